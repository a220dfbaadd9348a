package domain

// Recommendation priority tiers derived from the fit score.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// MarketplaceRecommendation scores how well one marketplace fits an item.
type MarketplaceRecommendation struct {
	Marketplace    string  `json:"marketplace"`
	Name           string  `json:"name"`
	Score          float64 `json:"score"`
	Priority       string  `json:"priority"`
	Reasoning      string  `json:"reasoning"`
	Fees           string  `json:"fees"`
	EstimatedSpeed string  `json:"estimated_speed"`
	Audience       string  `json:"audience"`
}
