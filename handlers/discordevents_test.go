package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"tldrbot/core"
	"tldrbot/usecases/tldr"
)

func intOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func TestBuildRequest(t *testing.T) {
	t.Run("defaults when no options given", func(t *testing.T) {
		request := buildRequest("channel-1", nil)

		assert.Equal(t, "channel-1", request.ChannelID)
		assert.Equal(t, tldr.DefaultMessageCount, request.Count)
		assert.False(t, request.Start.IsPresent())
		assert.False(t, request.End.IsPresent())
		assert.False(t, request.Focus.IsPresent())
	})

	t.Run("all options mapped", func(t *testing.T) {
		request := buildRequest("channel-1", []*discordgo.ApplicationCommandInteractionDataOption{
			intOption("count", 200),
			stringOption("start", "1h"),
			stringOption("end", "5m"),
			stringOption("focus", "action items"),
		})

		assert.Equal(t, 200, request.Count)
		assert.Equal(t, "1h", request.Start.MustGet())
		assert.Equal(t, "5m", request.End.MustGet())
		assert.Equal(t, "action items", request.Focus.MustGet())
	})
}

func TestUserMessageForError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation error shows its reason verbatim",
			err:      &core.ValidationError{Reason: "count must be between 1 and 2000."},
			expected: "count must be between 1 and 2000.",
		},
		{
			name:     "permission denial names the missing permission",
			err:      fmt.Errorf("failed to collect channel messages: %w", core.ErrPermissionDenied),
			expected: "Read Message History",
		},
		{
			name:     "timeout suggests retrying",
			err:      fmt.Errorf("summarization request timed out: %w", core.ErrTimeout),
			expected: "took too long",
		},
		{
			name:     "upstream failure is reported as unavailability",
			err:      &core.UpstreamError{StatusCode: 529, Detail: "overloaded"},
			expected: "unavailable",
		},
		{
			name:     "anything else gets a generic one-liner",
			err:      errors.New("dial tcp: connection refused"),
			expected: "Something went wrong",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			message := userMessageForError(tc.err)

			assert.Contains(t, message, tc.expected)
			// single line, no internal detail leaked
			assert.NotContains(t, message, "\n")
			assert.NotContains(t, message, "tcp")
			assert.NotContains(t, message, "529")
		})
	}
}
