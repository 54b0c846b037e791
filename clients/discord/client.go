package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"tldrbot/clients"
	"tldrbot/core"
)

// maxHistoryPageSize is the largest page the Discord channel messages
// endpoint accepts
const maxHistoryPageSize = 100

// DiscordClient implements the clients.DiscordClient interface on top of a
// shared discordgo session
type DiscordClient struct {
	session *discordgo.Session
}

// NewDiscordClient creates a new Discord client around an existing session
func NewDiscordClient(session *discordgo.Session) clients.DiscordClient {
	return &DiscordClient{session: session}
}

// GetBotUser returns the authenticated bot user
func (c *DiscordClient) GetBotUser() (*clients.DiscordBotUser, error) {
	user, err := c.session.User("@me")
	if err != nil {
		return nil, mapDiscordError("fetch bot user", err)
	}
	return &clients.DiscordBotUser{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// GetChannelMessages fetches a single page of channel history, newest-first
func (c *DiscordClient) GetChannelMessages(
	ctx context.Context,
	channelID string,
	limit int,
	beforeID string,
) ([]clients.DiscordMessage, error) {
	if limit > maxHistoryPageSize {
		limit = maxHistoryPageSize
	}

	sdkMessages, err := c.session.ChannelMessages(
		channelID,
		limit,
		beforeID,
		"",
		"",
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return nil, mapDiscordError("fetch channel history", err)
	}

	messages := make([]clients.DiscordMessage, 0, len(sdkMessages))
	for _, m := range sdkMessages {
		if m.Author == nil {
			continue
		}
		messages = append(messages, clients.DiscordMessage{
			ID:          m.ID,
			AuthorID:    m.Author.ID,
			AuthorName:  displayName(m.Author),
			AuthorIsBot: m.Author.Bot,
			Content:     m.Content,
			Timestamp:   m.Timestamp,
		})
	}
	return messages, nil
}

// displayName prefers the account's global display name over the login username
func displayName(user *discordgo.User) string {
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// mapDiscordError converts discordgo REST failures into the error taxonomy
// the rest of the pipeline reports on
func mapDiscordError(op string, err error) error {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil &&
		restErr.Response.StatusCode == http.StatusForbidden {
		return fmt.Errorf("failed to %s: %w", op, core.ErrPermissionDenied)
	}
	return &core.TransportError{Op: op, Err: err}
}
