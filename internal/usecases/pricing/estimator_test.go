package pricing

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellkit/listing-assistant-api/internal/domain"
)

func obsWithPrices(prices ...float64) []domain.SaleObservation {
	observations := make([]domain.SaleObservation, 0, len(prices))
	for _, p := range prices {
		observations = append(observations, domain.SaleObservation{Price: p})
	}
	return observations
}

func timePtr(t time.Time) *time.Time { return &t }

func TestEstimate_KnownSample(t *testing.T) {
	rec, err := Estimate(obsWithPrices(10, 20, 30, 40, 50), "")
	require.NoError(t, err)

	assert.Equal(t, 5, rec.SampleSize)
	assert.Equal(t, 30.0, rec.MedianPrice)
	assert.Equal(t, 30.0, rec.AveragePrice)
	assert.Equal(t, 10.0, rec.MinPrice)
	assert.Equal(t, 50.0, rec.MaxPrice)
	assert.Equal(t, 20.0, rec.P25Price)
	assert.Equal(t, 40.0, rec.P75Price)

	// No timestamps at all: size-only classification, n=5 stays low.
	assert.Equal(t, domain.DemandLow, rec.DemandLevel)
	assert.Nil(t, rec.EstimatedDaysToSell)
}

func TestEstimate_SingleObservation(t *testing.T) {
	rec, err := Estimate(obsWithPrices(99.99), "")
	require.NoError(t, err)

	assert.Equal(t, 1, rec.SampleSize)
	assert.Equal(t, 99.99, rec.MedianPrice)
	assert.Equal(t, 99.99, rec.AveragePrice)
	assert.Equal(t, 99.99, rec.MinPrice)
	assert.Equal(t, 99.99, rec.MaxPrice)
	assert.Equal(t, 99.99, rec.P25Price)
	assert.Equal(t, 99.99, rec.P75Price)
	assert.Equal(t, domain.DemandLow, rec.DemandLevel)
	assert.Nil(t, rec.EstimatedDaysToSell)
}

func TestEstimate_IdenticalPrices(t *testing.T) {
	for _, n := range []int{2, 7, 25} {
		prices := make([]float64, n)
		for i := range prices {
			prices[i] = 42.5
		}

		rec, err := Estimate(obsWithPrices(prices...), "")
		require.NoError(t, err)

		assert.Equal(t, 42.5, rec.MedianPrice)
		assert.Equal(t, 42.5, rec.AveragePrice)
		assert.Equal(t, 42.5, rec.MinPrice)
		assert.Equal(t, 42.5, rec.MaxPrice)
		assert.Equal(t, 42.5, rec.P25Price)
		assert.Equal(t, 42.5, rec.P75Price)
	}
}

func TestEstimate_PercentileOrderingInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		n := 1 + rng.Intn(40)
		observations := make([]domain.SaleObservation, 0, n)
		for j := 0; j < n; j++ {
			observations = append(observations, domain.SaleObservation{
				Price: 1 + rng.Float64()*500,
			})
		}

		rec, err := Estimate(observations, "")
		require.NoError(t, err)

		assert.LessOrEqual(t, rec.MinPrice, rec.P25Price)
		assert.LessOrEqual(t, rec.P25Price, rec.MedianPrice)
		assert.LessOrEqual(t, rec.MedianPrice, rec.P75Price)
		assert.LessOrEqual(t, rec.P75Price, rec.MaxPrice)
	}
}

func TestEstimate_InputOrderDoesNotMatter(t *testing.T) {
	observations := obsWithPrices(120, 15, 340, 88, 42, 90, 61)

	expected, err := Estimate(observations, "")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10; i++ {
		shuffled := make([]domain.SaleObservation, len(observations))
		copy(shuffled, observations)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		rec, err := Estimate(shuffled, "")
		require.NoError(t, err)
		assert.Equal(t, expected, rec)
	}
}

func TestEstimate_ExcludesInvalidPrices(t *testing.T) {
	only, err := Estimate(obsWithPrices(75), "")
	require.NoError(t, err)

	mixed := obsWithPrices(75)
	for i := 0; i < 9; i++ {
		mixed = append(mixed, domain.SaleObservation{Price: 0})
	}
	mixed = append(mixed, domain.SaleObservation{Price: -10})

	rec, err := Estimate(mixed, "")
	require.NoError(t, err)

	assert.Equal(t, only, rec)
	assert.Equal(t, 1, rec.SampleSize)
}

func TestEstimate_InsufficientData(t *testing.T) {
	_, err := Estimate(nil, "")
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Estimate([]domain.SaleObservation{}, "")
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Estimate(obsWithPrices(0, 0, -5), "")
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestEstimate_ConditionAdjustmentSkippedBelowThreshold(t *testing.T) {
	observations := []domain.SaleObservation{
		{Price: 100, Condition: domain.ConditionGood},
		{Price: 200, Condition: domain.ConditionGood},
		{Price: 300, Condition: domain.ConditionNew},
		{Price: 400, Condition: domain.ConditionNew},
		{Price: 500},
	}

	unadjusted, err := Estimate(observations, "")
	require.NoError(t, err)

	// Only two observations match "good": adjustment must be a no-op.
	rec, err := Estimate(observations, domain.ConditionGood)
	require.NoError(t, err)
	assert.Equal(t, unadjusted, rec)
}

func TestEstimate_ConditionAdjustmentUpweightsMatches(t *testing.T) {
	observations := []domain.SaleObservation{
		{Price: 100, Condition: domain.ConditionGood},
		{Price: 110, Condition: domain.ConditionGood},
		{Price: 120, Condition: domain.ConditionGood},
		{Price: 500, Condition: domain.ConditionNew},
		{Price: 600, Condition: domain.ConditionNew},
	}

	unadjusted, err := Estimate(observations, "")
	require.NoError(t, err)

	rec, err := Estimate(observations, domain.ConditionGood)
	require.NoError(t, err)

	// Three matches: the weighted subsample pulls the center toward the
	// matching-condition prices.
	assert.Less(t, rec.MedianPrice, unadjusted.MedianPrice)
	assert.Less(t, rec.AveragePrice, unadjusted.AveragePrice)

	// Extremes and the reported sample size are unaffected by weighting.
	assert.Equal(t, unadjusted.MinPrice, rec.MinPrice)
	assert.Equal(t, unadjusted.MaxPrice, rec.MaxPrice)
	assert.Equal(t, unadjusted.SampleSize, rec.SampleSize)
}

func TestEstimate_HighDemand(t *testing.T) {
	now := time.Now()
	observations := make([]domain.SaleObservation, 0, 25)
	for i := 0; i < 25; i++ {
		observations = append(observations, domain.SaleObservation{
			Price:  100 + float64(i*4),
			SoldAt: timePtr(now.AddDate(0, 0, -(i % 10))),
		})
	}

	rec, err := Estimate(observations, "")
	require.NoError(t, err)

	assert.Equal(t, domain.DemandHigh, rec.DemandLevel)
	require.NotNil(t, rec.EstimatedDaysToSell)
	assert.Equal(t, 1.2, *rec.EstimatedDaysToSell) // 30 days / 25 sales in window
}

func TestEstimate_MediumDemandWhenRecencyFails(t *testing.T) {
	now := time.Now()
	observations := make([]domain.SaleObservation, 0, 20)
	for i := 0; i < 20; i++ {
		// Only two sales inside the 30-day window relative to the newest.
		daysAgo := 90 + i
		if i < 2 {
			daysAgo = i
		}
		observations = append(observations, domain.SaleObservation{
			Price:  50,
			SoldAt: timePtr(now.AddDate(0, 0, -daysAgo)),
		})
	}

	rec, err := Estimate(observations, "")
	require.NoError(t, err)

	assert.Equal(t, domain.DemandMedium, rec.DemandLevel)
	require.NotNil(t, rec.EstimatedDaysToSell)
	assert.Equal(t, 15.0, *rec.EstimatedDaysToSell) // 30 days / 2 sales in window
}

func TestEstimate_SizeOnlyMediumWithoutTimestamps(t *testing.T) {
	prices := make([]float64, 12)
	for i := range prices {
		prices[i] = float64(10 + i)
	}

	rec, err := Estimate(obsWithPrices(prices...), "")
	require.NoError(t, err)

	assert.Equal(t, domain.DemandMedium, rec.DemandLevel)
	assert.Nil(t, rec.EstimatedDaysToSell)
}

func TestEstimate_InterpolatedPercentiles(t *testing.T) {
	// Four prices: p25 lands at rank 0.75, p75 at rank 2.25.
	rec, err := Estimate(obsWithPrices(10, 20, 30, 40), "")
	require.NoError(t, err)

	assert.Equal(t, 17.5, rec.P25Price)
	assert.Equal(t, 25.0, rec.MedianPrice)
	assert.Equal(t, 32.5, rec.P75Price)
}
