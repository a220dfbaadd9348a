package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/sellkit/listing-assistant-api/infrastructure/repository/mocks"
	"github.com/sellkit/listing-assistant-api/internal/api/handler"
	"github.com/sellkit/listing-assistant-api/internal/domain"
	"github.com/sellkit/listing-assistant-api/internal/usecases/listing"
)

type posterFunc func(ctx context.Context, l *domain.Listing, price float64) (*domain.PostResult, error)

func (f posterFunc) PostListing(ctx context.Context, l *domain.Listing, price float64) (*domain.PostResult, error) {
	return f(ctx, l, price)
}

func withListingID(req *http.Request, id string) *http.Request {
	params := httprouter.Params{{Key: "id", Value: id}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestListListings_CreatedAfterFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockListingRepository(ctrl)
	manager := listing.NewService(repo)

	repo.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(filters domain.ListingFilters) ([]*domain.Listing, error) {
			require.NotNil(t, filters.CreatedAfter)
			assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *filters.CreatedAfter)
			return []*domain.Listing{}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/listings?created_after=2026-01-15", nil)
	recorder := httptest.NewRecorder()

	handler.ListListings(manager).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestListListings_InvalidCreatedAfter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockListingRepository(ctrl)
	manager := listing.NewService(repo)

	req := httptest.NewRequest(http.MethodGet, "/v1/listings?created_after=15-01-2026", nil)
	recorder := httptest.NewRecorder()

	handler.ListListings(manager).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPostListing_EmptyBodyUsesMedianPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockListingRepository(ctrl)
	manager := listing.NewService(repo)

	stored := &domain.Listing{
		ID:       "lst_1",
		ItemName: "Dyson V8",
		Status:   domain.ListingStatusDraft,
		Pricing: &domain.PricingResult{
			Recommendation: &domain.PriceRecommendation{MedianPrice: 42.5},
		},
	}
	// Get for the handler, then again inside MarkPosted.
	repo.EXPECT().GetByID("lst_1").Return(stored, nil).Times(2)
	repo.EXPECT().Update(gomock.Any()).Return(nil)

	poster := posterFunc(func(_ context.Context, l *domain.Listing, price float64) (*domain.PostResult, error) {
		assert.Equal(t, 42.5, price)
		return &domain.PostResult{Marketplace: "facebook", Status: "posted"}, nil
	})

	req := withListingID(httptest.NewRequest(http.MethodPost, "/v1/listings/lst_1/post", nil), "lst_1")
	recorder := httptest.NewRecorder()

	handler.PostListing(manager, poster).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestPostListing_MalformedBodyRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockListingRepository(ctrl)
	manager := listing.NewService(repo)

	poster := posterFunc(func(_ context.Context, _ *domain.Listing, _ float64) (*domain.PostResult, error) {
		t.Fatal("poster must not be called for a malformed body")
		return nil, nil
	})

	req := withListingID(httptest.NewRequest(http.MethodPost, "/v1/listings/lst_1/post",
		strings.NewReader(`not json`)), "lst_1")
	recorder := httptest.NewRecorder()

	handler.PostListing(manager, poster).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPostListing_EmptyBodyWithoutPricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockListingRepository(ctrl)
	manager := listing.NewService(repo)

	poster := posterFunc(func(_ context.Context, _ *domain.Listing, _ float64) (*domain.PostResult, error) {
		t.Fatal("poster must not be called without a price")
		return nil, nil
	})

	repo.EXPECT().GetByID("lst_1").Return(&domain.Listing{ID: "lst_1"}, nil)

	req := withListingID(httptest.NewRequest(http.MethodPost, "/v1/listings/lst_1/post", nil), "lst_1")
	recorder := httptest.NewRecorder()

	handler.PostListing(manager, poster).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
