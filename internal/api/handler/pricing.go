package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sellkit/listing-assistant-api/internal/usecases/pricing"
	"github.com/sellkit/listing-assistant-api/pkg/apiErrors"
)

type EstimatePriceRequest struct {
	Query     string `json:"query"`
	Condition string `json:"condition"`
}

// EstimatePrice prices an item described by a free-text query.
func EstimatePrice(pricer pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EstimatePriceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		result, err := pricer.EstimateForItem(r.Context(), req.Query, req.Condition)
		if err != nil {
			handlePricingError(w, err, req.Query)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func handlePricingError(w http.ResponseWriter, err error, query string) {
	switch {
	case errors.Is(err, pricing.ErrQueryRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "query is required", nil)
	case errors.Is(err, pricing.ErrInsufficientData):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPriceData, "not enough sold-listing data to price this item", map[string]any{
			"query": query,
		})
	default:
		logrus.WithError(err).WithField("query", query).Error("price estimation failed")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "price estimation failed", nil)
	}
}
