package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-01-15")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *parsed)
}

func TestParseDate_EmptyMeansNoFilter(t *testing.T) {
	parsed, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, parsed)
}

func TestParseDate_RejectsOtherFormats(t *testing.T) {
	_, err := ParseDate("15/01/2026")
	assert.Error(t, err)
}
