package utils

import "time"

// ParseDate parses a YYYY-MM-DD query parameter. An empty string means the
// caller did not filter by date, so it maps to nil rather than the zero time.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
