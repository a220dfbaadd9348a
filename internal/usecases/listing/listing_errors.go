package listing

import "github.com/pkg/errors"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrNameRequired    = errors.New("item name is required")
	ErrMissingCopy     = errors.New("listing has no generated copy")
	ErrMissingPricing  = errors.New("listing has no pricing result")
)
