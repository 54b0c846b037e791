package tldr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tldrbot/core"
)

func TestParseTimeAgo_ValidInputs(t *testing.T) {
	testCases := []struct {
		input    string
		expected time.Duration
	}{
		{"30m", 30 * time.Minute},
		{"1h", time.Hour},
		{"2d", 48 * time.Hour},
		{"0m", 0},
		{"  15M  ", 15 * time.Minute},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result, err := ParseTimeAgo(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestParseTimeAgo_InvalidInputs(t *testing.T) {
	for _, input := range []string{"", "h", "10", "10x", "-5m", "1.5h", "one hour"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimeAgo(input)
			require.Error(t, err)
			assert.True(t, core.IsValidationError(err), "malformed input should be a validation error")
		})
	}
}
