package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sellkit/listing-assistant-api/internal/api/handler"
	"github.com/sellkit/listing-assistant-api/internal/config"
	"github.com/sellkit/listing-assistant-api/internal/domain"
	"github.com/sellkit/listing-assistant-api/internal/usecases/pricing/mocks"
)

type fakeAnalyzer struct {
	analysis *domain.ItemAnalysis
	copyText *domain.ListingCopy
}

func (f *fakeAnalyzer) AnalyzeItem(_ context.Context, _ []string) (*domain.ItemAnalysis, error) {
	return f.analysis, nil
}

func (f *fakeAnalyzer) GenerateCopy(_ context.Context, _ *domain.ItemAnalysis, _ string, _ float64) (*domain.ListingCopy, error) {
	return f.copyText, nil
}

type fakeUploadStore struct{}

func (fakeUploadStore) SaveUpload(fileHeader *multipart.FileHeader) (string, string, error) {
	return "uploads/2026/08/" + fileHeader.Filename, "image/jpeg", nil
}

func analyzeRequest(t *testing.T) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("images", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("condition", "good"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/items/analyze", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestAnalyzeItem_IncludesMarketplaceRecommendations(t *testing.T) {
	ctrl := gomock.NewController(t)
	pricer := mocks.NewMockPricer(ctrl)

	analyzer := &fakeAnalyzer{
		analysis: &domain.ItemAnalysis{
			Identified: true,
			ItemName:   "Vintage Star Wars Figure",
			Category:   "Collectibles",
		},
		copyText: &domain.ListingCopy{Title: "Vintage Star Wars Figure"},
	}

	pricer.EXPECT().
		EstimateForItem(gomock.Any(), "Vintage Star Wars Figure", "good").
		Return(&domain.PricingResult{
			Source: domain.PricingSourceSoldListings,
			Recommendation: &domain.PriceRecommendation{
				SampleSize:  25,
				MedianPrice: 120,
			},
		}, nil)

	cfg := &config.Config{}
	cfg.Storage.MaxUploadFiles = 10

	recorder := httptest.NewRecorder()
	handler.AnalyzeItem(analyzer, pricer, fakeUploadStore{}, cfg).ServeHTTP(recorder, analyzeRequest(t))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response handler.AnalyzeItemResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))

	require.NotEmpty(t, response.Marketplaces)
	assert.LessOrEqual(t, len(response.Marketplaces), 4)

	// 25 sold comparables prove an active eBay market for a collectible, so
	// eBay should top the list.
	top := response.Marketplaces[0]
	assert.Equal(t, "ebay", top.Marketplace)
	assert.Equal(t, domain.PriorityHigh, top.Priority)
}
