package domain

// Demand levels derived from sample size and sale recency.
const (
	DemandHigh   = "high"
	DemandMedium = "medium"
	DemandLow    = "low"
)

// PriceRecommendation is the immutable result of one pricing estimation.
// EstimatedDaysToSell is nil when the sample carried no usable timestamps.
type PriceRecommendation struct {
	SampleSize          int      `json:"sample_size"`
	MedianPrice         float64  `json:"median_price"`
	AveragePrice        float64  `json:"average_price"`
	MinPrice            float64  `json:"min_price"`
	MaxPrice            float64  `json:"max_price"`
	P25Price            float64  `json:"p25_price"`
	P75Price            float64  `json:"p75_price"`
	DemandLevel         string   `json:"demand_level"`
	EstimatedDaysToSell *float64 `json:"estimated_days_to_sell,omitempty"`
}

// Sources for a pricing result, so callers can tell real sold data apart
// from an AI fallback estimate.
const (
	PricingSourceSoldListings = "sold_listings"
	PricingSourceAIFallback   = "ai_fallback"
)

// PricingResult is the orchestration-layer envelope around a recommendation:
// where the numbers came from and which comparables backed them.
type PricingResult struct {
	Query          string               `json:"query"`
	Condition      string               `json:"condition,omitempty"`
	Source         string               `json:"source"`
	Recommendation *PriceRecommendation `json:"recommendation"`
	Comparables    []SaleObservation    `json:"comparables,omitempty"`
}
