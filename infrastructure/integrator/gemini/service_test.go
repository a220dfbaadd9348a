package gemini_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sellkit/listing-assistant-api/infrastructure/integrator/gemini"
	"github.com/sellkit/listing-assistant-api/infrastructure/integrator/gemini/mocks"
	"github.com/sellkit/listing-assistant-api/internal/domain"
)

func TestAnalyzeImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	service := gemini.New(client)

	response := "```json\n{\"identified\": true, \"item_name\": \"Dyson V8\", \"category\": \"Appliances\", \"brand\": \"Dyson\", \"description\": \"A cordless vacuum.\", \"features\": [\"cordless\"]}\n```"
	client.EXPECT().
		GenerateFromImages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(response, nil)

	analysis, err := service.AnalyzeImages(context.Background(), []gemini.ImagePart{{Data: []byte("img"), MIMEType: "image/jpeg"}})
	require.NoError(t, err)

	assert.True(t, analysis.Identified)
	assert.Equal(t, "Dyson V8", analysis.ItemName)
	assert.Equal(t, "Dyson", analysis.Brand)
	assert.Equal(t, []string{"cordless"}, analysis.Features)
}

func TestAnalyzeImages_UnparseableResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	service := gemini.New(client)

	client.EXPECT().
		GenerateFromImages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("I cannot help with that.", nil)

	_, err := service.AnalyzeImages(context.Background(), nil)
	assert.Error(t, err)
}

func TestGenerateListingCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	service := gemini.New(client)

	response := `{"title": "Dyson V8 Cordless Vacuum", "description": "desc", "facebook_copy": "fb", "ebay_copy": "ebay"}`
	client.EXPECT().
		GenerateText(gomock.Any(), gomock.Any()).
		Return(response, nil)

	analysis := &domain.ItemAnalysis{ItemName: "Dyson V8", Category: "Appliances"}
	listingCopy, err := service.GenerateListingCopy(context.Background(), analysis, domain.ConditionGood, 129.99)
	require.NoError(t, err)

	assert.Equal(t, "Dyson V8 Cordless Vacuum", listingCopy.Title)
	assert.Equal(t, "fb", listingCopy.FacebookCopy)
	assert.Equal(t, "ebay", listingCopy.EbayCopy)
}

func TestGenerateListingCopy_EmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	service := gemini.New(client)

	client.EXPECT().
		GenerateText(gomock.Any(), gomock.Any()).
		Return(`{"title": "", "description": "desc"}`, nil)

	_, err := service.GenerateListingCopy(context.Background(), &domain.ItemAnalysis{ItemName: "x"}, domain.ConditionGood, 10)
	assert.Error(t, err)
}

func TestEstimatePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	service := gemini.New(client)

	client.EXPECT().
		GenerateText(gomock.Any(), gomock.Any()).
		Return("Here is my estimate: {\"low\": 80.0, \"typical\": 120.5, \"high\": 160.0}", nil)

	recommendation, err := service.EstimatePrice(context.Background(), "Dyson V8", domain.ConditionGood)
	require.NoError(t, err)

	assert.Equal(t, 0, recommendation.SampleSize)
	assert.Equal(t, 120.5, recommendation.MedianPrice)
	assert.Equal(t, 80.0, recommendation.MinPrice)
	assert.Equal(t, 160.0, recommendation.MaxPrice)
	assert.Equal(t, domain.DemandLow, recommendation.DemandLevel)
	assert.Nil(t, recommendation.EstimatedDaysToSell)
}

func TestEstimatePrice_NoUsableEstimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	service := gemini.New(client)

	client.EXPECT().
		GenerateText(gomock.Any(), gomock.Any()).
		Return(`{"low": 0, "typical": 0, "high": 0}`, nil)

	_, err := service.EstimatePrice(context.Background(), "mystery item", "")
	assert.Error(t, err)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain object", `{"a": 1}`, `{"a": 1}`},
		{"fenced json", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fenced bare", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding prose", `Sure! {"a": 1} Hope that helps.`, `{"a": 1}`},
		{"no object", "no json here", "no json here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(gemini.ExtractJSON(tt.raw)))
		})
	}
}
