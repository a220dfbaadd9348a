package pricing

import (
	"context"

	"github.com/sellkit/listing-assistant-api/internal/domain"
)

// SoldListingSearcher fetches completed-sale comparables for a search query.
type SoldListingSearcher interface {
	SearchSoldListings(ctx context.Context, query, condition string, maxResults int) ([]domain.SaleObservation, error)
}

// FallbackEstimator produces an AI-generated recommendation when no sold
// data exists for the query.
type FallbackEstimator interface {
	EstimatePrice(ctx context.Context, query, condition string) (*domain.PriceRecommendation, error)
}

// Pricer is the pricing use case consumed by handlers and the scheduler.
type Pricer interface {
	// EstimateForItem fetches comparables, runs the statistics engine and,
	// when the valid sample is empty, falls back to the AI estimator.
	EstimateForItem(ctx context.Context, query, condition string) (*domain.PricingResult, error)
}
