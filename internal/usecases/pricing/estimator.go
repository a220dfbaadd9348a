package pricing

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/sellkit/listing-assistant-api/internal/domain"
	"github.com/sellkit/listing-assistant-api/pkg/utils"
)

const (
	quickSaleFraction   = 0.25
	medianFraction      = 0.50
	upperMarketFraction = 0.75

	// Recency window for demand and velocity, anchored at the newest sale.
	recencyWindowDays = 30

	highDemandMinSample   = 20
	mediumDemandMinSample = 5

	// Without any timestamps demand is classified by sample size alone;
	// high is unreachable since it requires recency evidence.
	sizeOnlyMediumMinSample = 10

	// Below this many matching-condition observations the adjustment would
	// overfit to noise, so the full-sample statistics are kept.
	conditionMinMatches = 3
	conditionWeight     = 3
)

// Estimate derives a price recommendation from a sample of completed sales.
// It is a pure function: no I/O, no shared state, safe for concurrent use.
// The only failure mode is ErrInsufficientData on an empty valid sample;
// every other irregular input (single observation, identical prices, missing
// timestamps) degrades by rule instead of failing.
func Estimate(observations []domain.SaleObservation, itemCondition string) (*domain.PriceRecommendation, error) {
	valid := validObservations(observations)
	if len(valid) == 0 {
		return nil, ErrInsufficientData
	}

	prices := weightedPrices(valid, itemCondition)
	sort.Float64s(prices)

	rec := &domain.PriceRecommendation{
		SampleSize:   len(valid),
		MedianPrice:  utils.RoundWithTwoDecimalPlace(percentile(prices, medianFraction)),
		AveragePrice: utils.RoundWithTwoDecimalPlace(mean(prices)),
		MinPrice:     prices[0],
		MaxPrice:     prices[len(prices)-1],
		P25Price:     utils.RoundWithTwoDecimalPlace(percentile(prices, quickSaleFraction)),
		P75Price:     utils.RoundWithTwoDecimalPlace(percentile(prices, upperMarketFraction)),
	}

	rec.DemandLevel, rec.EstimatedDaysToSell = classifyDemand(valid)

	return rec, nil
}

// validObservations drops records with a missing or non-positive price so no
// later statistic divides by a sample size that includes excluded records.
func validObservations(observations []domain.SaleObservation) []domain.SaleObservation {
	valid := make([]domain.SaleObservation, 0, len(observations))
	for _, obs := range observations {
		if obs.Price > 0 {
			valid = append(valid, obs)
		}
	}
	return valid
}

// weightedPrices returns the price list the statistics run over. When the
// caller states a condition and at least conditionMinMatches observations
// share it, matching prices are repeated conditionWeight times so they pull
// the percentiles toward same-condition sales. Otherwise the plain sample is
// returned unmodified.
func weightedPrices(valid []domain.SaleObservation, itemCondition string) []float64 {
	prices := make([]float64, 0, len(valid))

	matches := 0
	if itemCondition != "" {
		for _, obs := range valid {
			if strings.EqualFold(obs.Condition, itemCondition) {
				matches++
			}
		}
	}

	if matches < conditionMinMatches {
		for _, obs := range valid {
			prices = append(prices, obs.Price)
		}
		return prices
	}

	for _, obs := range valid {
		weight := 1
		if strings.EqualFold(obs.Condition, itemCondition) {
			weight = conditionWeight
		}
		for i := 0; i < weight; i++ {
			prices = append(prices, obs.Price)
		}
	}
	return prices
}

// percentile computes the value at fraction f of a sorted price list using
// linear interpolation between the bracketing ranks. Nearest-rank truncation
// would silently ignore the top or bottom observation on the small samples
// common in this domain.
func percentile(sorted []float64, f float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	pos := f * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}

	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func mean(prices []float64) float64 {
	sum := 0.0
	for _, p := range prices {
		sum += p
	}
	return sum / float64(len(prices))
}

// classifyDemand derives the demand level and, when timestamps exist, the
// estimated days to sell from the sales-per-day rate in the recency window.
func classifyDemand(valid []domain.SaleObservation) (string, *float64) {
	n := len(valid)

	var newest time.Time
	timestamped := 0
	for _, obs := range valid {
		if !obs.HasTimestamp() {
			continue
		}
		timestamped++
		if obs.SoldAt.After(newest) {
			newest = *obs.SoldAt
		}
	}

	if timestamped == 0 {
		if n >= sizeOnlyMediumMinSample {
			return domain.DemandMedium, nil
		}
		return domain.DemandLow, nil
	}

	windowStart := newest.AddDate(0, 0, -recencyWindowDays)
	countInWindow := 0
	for _, obs := range valid {
		if obs.HasTimestamp() && !obs.SoldAt.Before(windowStart) {
			countInWindow++
		}
	}

	level := domain.DemandLow
	switch {
	case n >= highDemandMinSample && countInWindow*2 >= n:
		level = domain.DemandHigh
	case n >= mediumDemandMinSample:
		level = domain.DemandMedium
	}

	if countInWindow == 0 {
		return level, nil
	}

	days := utils.RoundWithTwoDecimalPlace(float64(recencyWindowDays) / float64(countInWindow))
	return level, &days
}
