package domain

import "time"

// Item condition tags as they arrive from the analysis pipeline and from
// marketplace listings.
const (
	ConditionNew     = "new"
	ConditionLikeNew = "like-new"
	ConditionGood    = "good"
	ConditionFair    = "fair"
	ConditionPoor    = "poor"
)

// SaleObservation is one completed transaction for a comparable item.
// Price is assumed to be in a single consistent currency across a sample.
type SaleObservation struct {
	Price     float64    `json:"price"`
	SoldAt    *time.Time `json:"sold_at,omitempty"`
	Condition string     `json:"condition,omitempty"`
}

// HasTimestamp reports whether the observation carries a sale date usable
// for recency classification.
func (o SaleObservation) HasTimestamp() bool {
	return o.SoldAt != nil && !o.SoldAt.IsZero()
}
