package core

import (
	"regexp"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_ValidPrefix(t *testing.T) {
	testCases := []struct {
		name     string
		prefix   string
		expected string
	}{
		{
			name:     "invocation prefix",
			prefix:   "inv",
			expected: "inv",
		},
		{
			name:     "uppercase prefix gets lowercased",
			prefix:   "INV",
			expected: "inv",
		},
		{
			name:     "prefix with leading/trailing spaces gets trimmed",
			prefix:   "  inv  ",
			expected: "inv",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id := NewID(tc.prefix)

			// Check format: prefix_ULID
			parts := strings.Split(id, "_")
			require.Len(t, parts, 2, "ID should have exactly one underscore separating prefix and ULID")
			assert.Equal(t, tc.expected, parts[0], "Prefix should be cleaned correctly")

			// Check ULID part is valid
			ulidPart := parts[1]
			assert.Len(t, ulidPart, 26, "ULID should be 26 characters long")

			ulidRegex := regexp.MustCompile("^[0123456789ABCDEFGHJKMNPQRSTVWXYZ]{26}$")
			assert.True(t, ulidRegex.MatchString(ulidPart), "ULID part should match base32 format")

			_, err := ulid.Parse(ulidPart)
			assert.NoError(t, err, "ULID part should parse as a valid ULID")
		})
	}
}

func TestNewID_EmptyPrefixPanics(t *testing.T) {
	assert.Panics(t, func() { NewID("") })
	assert.Panics(t, func() { NewID("   ") })
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewID("inv")
		require.False(t, seen[id], "generated IDs should be unique")
		seen[id] = true
	}
}
