package discord

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"tldrbot/core"
)

func TestDisplayName(t *testing.T) {
	t.Run("prefers global display name", func(t *testing.T) {
		user := &discordgo.User{Username: "alice123", GlobalName: "Alice"}
		assert.Equal(t, "Alice", displayName(user))
	})

	t.Run("falls back to username", func(t *testing.T) {
		user := &discordgo.User{Username: "alice123"}
		assert.Equal(t, "alice123", displayName(user))
	})
}

func TestMapDiscordError(t *testing.T) {
	t.Run("403 maps to permission denied", func(t *testing.T) {
		restErr := &discordgo.RESTError{
			Response: &http.Response{StatusCode: http.StatusForbidden},
		}
		err := mapDiscordError("fetch channel history", restErr)
		assert.True(t, core.IsPermissionDeniedError(err))
	})

	t.Run("other REST failures map to transport errors", func(t *testing.T) {
		restErr := &discordgo.RESTError{
			Response: &http.Response{StatusCode: http.StatusBadGateway},
		}
		err := mapDiscordError("fetch channel history", restErr)
		assert.False(t, core.IsPermissionDeniedError(err))

		var transportErr *core.TransportError
		assert.True(t, errors.As(err, &transportErr))
		assert.Equal(t, "fetch channel history", transportErr.Op)
	})

	t.Run("plain network failures map to transport errors", func(t *testing.T) {
		err := mapDiscordError("fetch bot user", errors.New("connection reset"))

		var transportErr *core.TransportError
		assert.True(t, errors.As(err, &transportErr))
	})
}
