package selecting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sellkit/listing-assistant-api/internal/domain"
)

const (
	baseScore         = 50.0
	categoryMatch     = 30.0
	categoryPartial   = 15.0
	priceInRange      = 15.0
	priceBelowRange   = -20.0
	priceAboveRange   = -10.0
	facebookHomeBonus = 10.0

	maxRecommendations = 4
)

// Sold-count tiers for boosting eBay when real market data backs the item.
const (
	strongMarketMinSales = 20
	activeMarketMinSales = 10
	someMarketMinSales   = 5
)

type marketplaceProfile struct {
	id         string
	name       string
	bestFor    []string
	minPrice   float64
	maxPrice   float64
	localFocus bool
	fees       string
	audience   string
	speed      string
}

var marketplaceProfiles = []marketplaceProfile{
	{
		id:         "facebook",
		name:       "Facebook Marketplace",
		bestFor:    []string{"Furniture", "Home Goods", "Baby Items", "Vehicles", "Local Services"},
		minPrice:   5,
		maxPrice:   10000,
		localFocus: true,
		fees:       "Free for local sales",
		audience:   "Local community buyers",
		speed:      "Fast (1-7 days typical)",
	},
	{
		id:         "craigslist",
		name:       "Craigslist",
		bestFor:    []string{"Furniture", "Vehicles", "Electronics", "Housing", "Services"},
		minPrice:   0,
		maxPrice:   50000,
		localFocus: true,
		fees:       "Free for most categories",
		audience:   "Local buyers, often looking for deals",
		speed:      "Fast (1-5 days typical)",
	},
	{
		id:         "ebay",
		name:       "eBay",
		bestFor:    []string{"Collectibles", "Electronics", "Fashion", "Antiques", "Rare Items"},
		minPrice:   1,
		maxPrice:   100000,
		localFocus: false,
		fees:       "~13% total fees",
		audience:   "Global buyers, collectors",
		speed:      "Medium (3-14 days typical)",
	},
	{
		id:         "mercari",
		name:       "Mercari",
		bestFor:    []string{"Fashion", "Electronics", "Beauty", "Toys", "Collectibles"},
		minPrice:   3,
		maxPrice:   2000,
		localFocus: false,
		fees:       "10% selling fee + shipping",
		audience:   "Young adults, bargain hunters",
		speed:      "Medium (2-10 days typical)",
	},
	{
		id:         "offerup",
		name:       "OfferUp",
		bestFor:    []string{"Furniture", "Electronics", "Home Goods", "Vehicles"},
		minPrice:   5,
		maxPrice:   10000,
		localFocus: true,
		fees:       "Free for local, fees for shipping",
		audience:   "Local buyers with ratings system",
		speed:      "Fast (1-7 days typical)",
	},
	{
		id:         "poshmark",
		name:       "Poshmark",
		bestFor:    []string{"Fashion", "Shoes", "Accessories", "Designer Items"},
		minPrice:   5,
		maxPrice:   5000,
		localFocus: false,
		fees:       "20% for items over $15",
		audience:   "Fashion-focused buyers",
		speed:      "Medium (3-14 days typical)",
	},
	{
		id:         "depop",
		name:       "Depop",
		bestFor:    []string{"Vintage Fashion", "Streetwear", "Y2K", "Unique Clothing"},
		minPrice:   5,
		maxPrice:   1000,
		localFocus: false,
		fees:       "10% selling fee",
		audience:   "Gen Z fashion enthusiasts",
		speed:      "Medium (2-14 days typical)",
	},
}

// Recommend ranks marketplaces for an item by category fit and price range.
// soldSampleSize is the number of real eBay sold comparables backing the
// price; a healthy count boosts eBay since it proves an active market there.
// Pure function, like the price estimator.
func Recommend(category string, price float64, soldSampleSize int) []domain.MarketplaceRecommendation {
	recommendations := make([]domain.MarketplaceRecommendation, 0, len(marketplaceProfiles))

	for _, profile := range marketplaceProfiles {
		score := fitScore(profile, category, price)

		reasoningExtra := ""
		if profile.id == "ebay" && soldSampleSize > someMarketMinSales {
			boost, note := ebayMarketBoost(soldSampleSize)
			score += boost
			reasoningExtra = note
		}

		if score <= 0 {
			continue
		}

		recommendations = append(recommendations, domain.MarketplaceRecommendation{
			Marketplace:    profile.id,
			Name:           profile.name,
			Score:          score,
			Priority:       priorityLevel(score),
			Reasoning:      reasoning(profile, category, score) + reasoningExtra,
			Fees:           profile.fees,
			EstimatedSpeed: profile.speed,
			Audience:       profile.audience,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return recommendations
}

// fitScore rates one marketplace 0-100 for the item.
func fitScore(profile marketplaceProfile, category string, price float64) float64 {
	score := baseScore

	categoryLower := strings.ToLower(category)

	matched := false
	for _, best := range profile.bestFor {
		bestLower := strings.ToLower(best)
		if strings.Contains(categoryLower, bestLower) || strings.Contains(bestLower, categoryLower) {
			score += categoryMatch
			matched = true
			break
		}
	}
	if !matched && categoryLower != "" {
	partial:
		for _, best := range profile.bestFor {
			bestLower := strings.ToLower(best)
			for _, word := range strings.Fields(categoryLower) {
				if strings.Contains(bestLower, word) {
					score += categoryPartial
					break partial
				}
			}
		}
	}

	switch {
	case price >= profile.minPrice && price <= profile.maxPrice:
		score += priceInRange
	case price < profile.minPrice:
		score += priceBelowRange
	default:
		score += priceAboveRange
	}

	// Facebook is the marketplace this service posts to, so it always stays
	// on the table.
	if profile.id == "facebook" {
		score += facebookHomeBonus
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func ebayMarketBoost(soldSampleSize int) (float64, string) {
	switch {
	case soldSampleSize > strongMarketMinSales:
		return 15, fmt.Sprintf(" %d recent sales found on eBay - proven market!", soldSampleSize)
	case soldSampleSize > activeMarketMinSales:
		return 10, fmt.Sprintf(" %d sales found on eBay - active market", soldSampleSize)
	default:
		return 5, fmt.Sprintf(" %d sales found on eBay", soldSampleSize)
	}
}

func priorityLevel(score float64) string {
	switch {
	case score >= 80:
		return domain.PriorityHigh
	case score >= 60:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

func reasoning(profile marketplaceProfile, category string, score float64) string {
	parts := make([]string, 0, 3)

	switch {
	case score >= 80:
		parts = append(parts, fmt.Sprintf("Excellent match for %s", category))
	case score >= 60:
		parts = append(parts, fmt.Sprintf("Good fit for %s", category))
	default:
		parts = append(parts, fmt.Sprintf("Possible option for %s", category))
	}

	if profile.localFocus {
		parts = append(parts, "Great for local pickup")
	} else {
		parts = append(parts, "Nationwide/global reach")
	}

	parts = append(parts, fmt.Sprintf("Typical speed: %s", profile.speed))

	return strings.Join(parts, ". ")
}
