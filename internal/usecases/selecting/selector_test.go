package selecting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellkit/listing-assistant-api/internal/domain"
)

func TestRecommend_FurnitureFavorsLocalMarketplaces(t *testing.T) {
	recommendations := Recommend("Furniture", 250, 0)

	require.NotEmpty(t, recommendations)
	assert.LessOrEqual(t, len(recommendations), 4)

	// Local marketplaces with a Furniture category fit outrank eBay.
	top := recommendations[0]
	assert.Contains(t, []string{"facebook", "craigslist", "offerup"}, top.Marketplace)
	assert.Equal(t, domain.PriorityHigh, top.Priority)

	for i := 1; i < len(recommendations); i++ {
		assert.GreaterOrEqual(t, recommendations[i-1].Score, recommendations[i].Score)
	}
}

func TestRecommend_SoldDataBoostsEbay(t *testing.T) {
	withoutData := Recommend("Collectibles", 120, 0)
	withData := Recommend("Collectibles", 120, 25)

	scoreOf := func(recs []domain.MarketplaceRecommendation, id string) float64 {
		for _, rec := range recs {
			if rec.Marketplace == id {
				return rec.Score
			}
		}
		t.Fatalf("marketplace %s not recommended", id)
		return 0
	}

	assert.Equal(t, scoreOf(withoutData, "ebay")+15, scoreOf(withData, "ebay"))
}

func TestRecommend_EbayBoostTiers(t *testing.T) {
	tests := []struct {
		soldSampleSize int
		boost          float64
	}{
		{0, 0},
		{5, 0},
		{6, 5},
		{11, 10},
		{21, 15},
	}

	baseline := ebayScore(t, Recommend("Collectibles", 120, 0))
	for _, tt := range tests {
		score := ebayScore(t, Recommend("Collectibles", 120, tt.soldSampleSize))
		assert.Equal(t, baseline+tt.boost, score, "sample size %d", tt.soldSampleSize)
	}
}

func ebayScore(t *testing.T, recs []domain.MarketplaceRecommendation) float64 {
	t.Helper()
	for _, rec := range recs {
		if rec.Marketplace == "ebay" {
			return rec.Score
		}
	}
	t.Fatal("ebay not recommended")
	return 0
}

func TestRecommend_PriceOutOfRangePenalized(t *testing.T) {
	// $2 item is below most marketplaces' floors; craigslist (floor 0)
	// should come out ahead of same-category floors of $5.
	recommendations := Recommend("Furniture", 2, 0)
	require.NotEmpty(t, recommendations)

	var craigslist, offerup float64
	for _, rec := range recommendations {
		switch rec.Marketplace {
		case "craigslist":
			craigslist = rec.Score
		case "offerup":
			offerup = rec.Score
		}
	}
	assert.Greater(t, craigslist, offerup)
}

func TestRecommend_CapsAtFour(t *testing.T) {
	recommendations := Recommend("Electronics", 300, 30)
	assert.Len(t, recommendations, 4)
}

func TestRecommend_UnknownCategoryStillRecommends(t *testing.T) {
	recommendations := Recommend("Obscure Widget", 50, 0)

	require.NotEmpty(t, recommendations)
	// Facebook keeps its home bonus even without a category match.
	assert.Equal(t, "facebook", recommendations[0].Marketplace)
}
