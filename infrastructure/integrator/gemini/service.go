package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sellkit/listing-assistant-api/internal/domain"
	"github.com/sellkit/listing-assistant-api/pkg/utils"
)

// GeminiIntegrator turns model output into domain structs. It backs photo
// analysis, listing copy generation, and the pricing fallback when no sold
// listings are available.
type GeminiIntegrator struct {
	Client Client
}

func New(client Client) *GeminiIntegrator {
	return &GeminiIntegrator{Client: client}
}

const analyzePrompt = `You are an expert at identifying items for resale on online marketplaces.
Look at the photos and identify the item. Respond with JSON only, no markdown, using this shape:
{
  "identified": true,
  "item_name": "specific item name including model if visible",
  "category": "marketplace category",
  "brand": "brand name or empty string",
  "description": "2-3 sentence factual description of what is visible",
  "features": ["notable feature", "..."]
}
If you cannot identify the item, set "identified" to false and leave the other fields empty.`

// AnalyzeImages identifies the item in the photos.
func (s *GeminiIntegrator) AnalyzeImages(ctx context.Context, images []ImagePart) (*domain.ItemAnalysis, error) {
	raw, err := s.Client.GenerateFromImages(ctx, analyzePrompt, images)
	if err != nil {
		return nil, err
	}

	var analysis domain.ItemAnalysis
	if err := json.Unmarshal(ExtractJSON(raw), &analysis); err != nil {
		logrus.WithField("raw", truncate(raw, 200)).Warn("gemini: unparseable analysis response")
		return nil, errors.Wrap(err, "decoding item analysis")
	}

	return &analysis, nil
}

// GenerateListingCopy writes the listing title and descriptions for the item.
func (s *GeminiIntegrator) GenerateListingCopy(ctx context.Context, analysis *domain.ItemAnalysis, condition string, price float64) (*domain.ListingCopy, error) {
	prompt := fmt.Sprintf(`You write listings for online marketplaces.
Item: %s
Category: %s
Brand: %s
Condition: %s
Asking price: $%.2f
Details: %s
Features: %s

Respond with JSON only, no markdown:
{
  "title": "listing title, max 80 characters",
  "description": "neutral 3-5 sentence description",
  "facebook_copy": "casual, friendly version for Facebook Marketplace",
  "ebay_copy": "keyword-rich version for eBay"
}`,
		analysis.ItemName, analysis.Category, analysis.Brand, condition, price,
		analysis.Description, strings.Join(analysis.Features, ", "))

	raw, err := s.Client.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var listingCopy domain.ListingCopy
	if err := json.Unmarshal(ExtractJSON(raw), &listingCopy); err != nil {
		return nil, errors.Wrap(err, "decoding listing copy")
	}

	if listingCopy.Title == "" {
		return nil, errors.New("model returned empty listing title")
	}

	return &listingCopy, nil
}

// EstimatePrice asks the model for a price range when no sold-listing data
// exists. The result is marked low demand: a guess is not market evidence.
func (s *GeminiIntegrator) EstimatePrice(ctx context.Context, query, condition string) (*domain.PriceRecommendation, error) {
	prompt := fmt.Sprintf(`Estimate the resale price of a used item on online marketplaces.
Item: %s
Condition: %s

Respond with JSON only, no markdown:
{
  "low": 0.0,
  "typical": 0.0,
  "high": 0.0
}
All values in USD. "typical" is the most likely selling price.`, query, condition)

	raw, err := s.Client.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var estimate struct {
		Low     float64 `json:"low"`
		Typical float64 `json:"typical"`
		High    float64 `json:"high"`
	}
	if err := json.Unmarshal(ExtractJSON(raw), &estimate); err != nil {
		return nil, errors.Wrap(err, "decoding price estimate")
	}
	if estimate.Typical <= 0 {
		return nil, errors.New("model returned no usable price estimate")
	}

	return &domain.PriceRecommendation{
		SampleSize:   0,
		MedianPrice:  utils.RoundWithTwoDecimalPlace(estimate.Typical),
		AveragePrice: utils.RoundWithTwoDecimalPlace(estimate.Typical),
		MinPrice:     utils.RoundWithTwoDecimalPlace(estimate.Low),
		MaxPrice:     utils.RoundWithTwoDecimalPlace(estimate.High),
		P25Price:     utils.RoundWithTwoDecimalPlace(estimate.Low),
		P75Price:     utils.RoundWithTwoDecimalPlace(estimate.High),
		DemandLevel:  domain.DemandLow,
	}, nil
}

// ExtractJSON strips markdown fences and surrounding prose, returning the
// outermost JSON object in the model output.
func ExtractJSON(raw string) []byte {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return []byte(cleaned)
	}

	return []byte(cleaned[start : end+1])
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
