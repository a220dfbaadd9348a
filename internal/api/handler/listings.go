package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sellkit/listing-assistant-api/internal/domain"
	"github.com/sellkit/listing-assistant-api/internal/usecases/listing"
	"github.com/sellkit/listing-assistant-api/pkg/apiErrors"
	"github.com/sellkit/listing-assistant-api/pkg/utils"
)

// MarketplacePoster publishes a listing on one marketplace.
type MarketplacePoster interface {
	PostListing(ctx context.Context, l *domain.Listing, price float64) (*domain.PostResult, error)
}

type PostListingRequest struct {
	Price float64 `json:"price"`
}

func CreateListing(manager listing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input listing.CreateDraftInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		created, err := manager.CreateDraft(r.Context(), input)
		if err != nil {
			if errors.Is(err, listing.ErrNameRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "item name is required", nil)
				return
			}
			logrus.WithError(err).Error("failed to create listing")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to create listing", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetListing(manager listing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		found, err := manager.Get(r.Context(), id)
		if err != nil {
			handleListingError(w, err, id)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(found)
	}
}

func ListListings(manager listing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := domain.ListingFilters{
			Status: r.URL.Query().Get("status"),
		}
		if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
			filters.Limit = limit
		}
		if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil {
			filters.Offset = offset
		}

		createdAfter, err := utils.ParseDate(r.URL.Query().Get("created_after"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "created_after must be YYYY-MM-DD", nil)
			return
		}
		filters.CreatedAfter = createdAfter

		listings, err := manager.List(r.Context(), filters)
		if err != nil {
			logrus.WithError(err).Error("failed to list listings")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list listings", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"listings": listings,
			"count":    len(listings),
		})
	}
}

func UpdateListing(manager listing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input listing.UpdateInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		updated, err := manager.Update(r.Context(), id, input)
		if err != nil {
			handleListingError(w, err, id)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteListing(manager listing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := manager.Delete(r.Context(), id); err != nil {
			handleListingError(w, err, id)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// PostListing publishes a draft to Facebook Marketplace and records the
// outcome on the listing. The price defaults to the median recommendation.
func PostListing(manager listing.Manager, poster MarketplacePoster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		// An empty body is fine here: price is optional and falls back to
		// the stored recommendation.
		var req PostListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		current, err := manager.Get(r.Context(), id)
		if err != nil {
			handleListingError(w, err, id)
			return
		}

		price := req.Price
		if price <= 0 {
			if current.Pricing == nil || current.Pricing.Recommendation == nil {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "no price given and listing has no pricing", nil)
				return
			}
			price = current.Pricing.Recommendation.MedianPrice
		}

		result, err := poster.PostListing(r.Context(), current, price)
		if err != nil {
			logrus.WithError(err).WithField("listing_id", id).Error("posting listing failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "posting to marketplace failed", nil)
			return
		}

		updated, err := manager.MarkPosted(r.Context(), id, *result)
		if err != nil {
			handleListingError(w, err, id)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func handleListingError(w http.ResponseWriter, err error, id string) {
	switch {
	case errors.Is(err, listing.ErrListingNotFound):
		apiErrors.WriteError(w, apiErrors.ErrListingNotFound, "listing not found", map[string]any{"id": id})
	default:
		logrus.WithError(err).WithField("listing_id", id).Error("listing operation failed")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "listing operation failed", nil)
	}
}
