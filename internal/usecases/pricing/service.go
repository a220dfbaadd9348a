package pricing

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sellkit/listing-assistant-api/internal/config"
	"github.com/sellkit/listing-assistant-api/internal/domain"
)

// How many comparables are echoed back to the caller for reference.
const comparablesPreviewLimit = 20

type Service struct {
	cfg      *config.Config
	searcher SoldListingSearcher
	fallback FallbackEstimator
}

func NewService(cfg *config.Config, searcher SoldListingSearcher, fallback FallbackEstimator) Pricer {
	return &Service{
		cfg:      cfg,
		searcher: searcher,
		fallback: fallback,
	}
}

// EstimateForItem is the pricing orchestration: sold comparables first, the
// statistics engine over them, and the AI estimator only when the engine
// reports an empty valid sample.
func (s *Service) EstimateForItem(ctx context.Context, query, condition string) (*domain.PricingResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}

	observations, err := s.searcher.SearchSoldListings(ctx, query, condition, s.cfg.Ebay.MaxResults)
	if err != nil {
		return nil, errors.Wrap(err, "searching sold listings")
	}

	rec, err := Estimate(observations, condition)
	if err == nil {
		logrus.WithFields(logrus.Fields{
			"query":       query,
			"sample_size": rec.SampleSize,
			"demand":      rec.DemandLevel,
		}).Debug("pricing: recommendation derived from sold listings")

		return &domain.PricingResult{
			Query:          query,
			Condition:      condition,
			Source:         domain.PricingSourceSoldListings,
			Recommendation: rec,
			Comparables:    previewComparables(observations),
		}, nil
	}

	if !errors.Is(err, ErrInsufficientData) {
		return nil, err
	}

	logrus.WithField("query", query).Info("pricing: no usable sold data, falling back to AI estimate")

	fallbackRec, fbErr := s.fallback.EstimatePrice(ctx, query, condition)
	if fbErr != nil {
		// Surface the original condition so callers can tell "no data"
		// apart from a fallback transport failure.
		return nil, errors.Wrapf(ErrInsufficientData, "ai fallback also failed: %v", fbErr)
	}

	return &domain.PricingResult{
		Query:          query,
		Condition:      condition,
		Source:         domain.PricingSourceAIFallback,
		Recommendation: fallbackRec,
	}, nil
}

func previewComparables(observations []domain.SaleObservation) []domain.SaleObservation {
	valid := validObservations(observations)
	if len(valid) > comparablesPreviewLimit {
		valid = valid[:comparablesPreviewLimit]
	}
	return valid
}
