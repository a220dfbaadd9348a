package domain

import "time"

// Listing lifecycle statuses.
const (
	ListingStatusDraft    = "draft"
	ListingStatusPosted   = "posted"
	ListingStatusSold     = "sold"
	ListingStatusArchived = "archived"
)

// ItemAnalysis is what the vision model extracted from the uploaded photos.
type ItemAnalysis struct {
	Identified  bool     `json:"identified"`
	ItemName    string   `json:"item_name"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand,omitempty"`
	Description string   `json:"description"`
	Features    []string `json:"features,omitempty"`
}

// ListingCopy holds generated listing text, with per-marketplace variants.
type ListingCopy struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	FacebookCopy string `json:"facebook_copy,omitempty"`
	EbayCopy     string `json:"ebay_copy,omitempty"`
}

// PostResult records the outcome of posting a listing to one marketplace.
type PostResult struct {
	Marketplace string `json:"marketplace"`
	Status      string `json:"status"`
	ListingID   string `json:"listing_id,omitempty"`
	URL         string `json:"url,omitempty"`
	Message     string `json:"message,omitempty"`
}

// Listing is a draft or published marketplace listing.
type Listing struct {
	ID          string         `json:"id"`
	ItemName    string         `json:"item_name"`
	Category    string         `json:"category"`
	Brand       string         `json:"brand,omitempty"`
	Condition   string         `json:"condition"`
	Description string         `json:"description"`
	ImagePaths  []string       `json:"image_paths"`
	Pricing     *PricingResult `json:"pricing,omitempty"`
	Copy        *ListingCopy   `json:"copy,omitempty"`
	Status      string         `json:"status"`
	PostedTo    []string       `json:"posted_to,omitempty"`
	PostResults []PostResult   `json:"post_results,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ListingFilters narrows listing queries.
type ListingFilters struct {
	Status       string
	CreatedAfter *time.Time
	Limit        int
	Offset       int
}
