package pricing

import "errors"

var (
	// ErrInsufficientData means the sample held no valid sold price at all.
	// Callers are expected to fall back to an alternative estimate source;
	// the engine never substitutes a zero or fabricated price.
	ErrInsufficientData = errors.New("no valid sale observations in sample")

	ErrQueryRequired = errors.New("search query is required")
)
