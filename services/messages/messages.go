package messages

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"tldrbot/clients"
	"tldrbot/models"
)

// historyPageSize is how many messages we request per history page; Discord
// caps pages at 100
const historyPageSize = 100

// MessagesService collects human-authored messages from channel history
type MessagesService struct {
	discordClient clients.DiscordClient
}

// NewMessagesService creates a new instance of MessagesService
func NewMessagesService(discordClient clients.DiscordClient) *MessagesService {
	return &MessagesService{discordClient: discordClient}
}

// CollectChannelMessages pages through a channel's history (newest-first),
// drops bot-authored and empty messages, and returns the rest oldest-first.
// At most params.Limit raw history messages are examined, so the result never
// exceeds params.Limit. Zero human messages is a valid, non-error outcome.
func (s *MessagesService) CollectChannelMessages(
	ctx context.Context,
	channelID string,
	params models.CollectParams,
) ([]models.ChannelMessage, error) {
	log.Printf("📋 Starting to collect up to %d messages from channel %s", params.Limit, channelID)

	if params.Limit <= 0 {
		return nil, fmt.Errorf("collection limit must be positive, got %d", params.Limit)
	}

	collected := make([]models.ChannelMessage, 0, params.Limit)
	examined := 0
	beforeID := ""

paging:
	for examined < params.Limit {
		pageSize := params.Limit - examined
		if pageSize > historyPageSize {
			pageSize = historyPageSize
		}

		page, err := s.discordClient.GetChannelMessages(ctx, channelID, pageSize, beforeID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch channel history: %w", err)
		}
		if len(page) == 0 {
			break
		}

		// page is newest-first
		for _, message := range page {
			examined++
			beforeID = message.ID

			if !params.After.IsZero() && message.Timestamp.Before(params.After) {
				// everything further back is outside the window
				break paging
			}
			if !params.Before.IsZero() && message.Timestamp.After(params.Before) {
				continue
			}
			if message.AuthorIsBot || strings.TrimSpace(message.Content) == "" {
				continue
			}

			collected = append(collected, models.ChannelMessage{
				AuthorName: message.AuthorName,
				Content:    message.Content,
				SentAt:     message.Timestamp,
			})
		}

		if len(page) < pageSize {
			// history exhausted
			break
		}
	}

	// platform order is newest-first; reverse to oldest-first for prompt coherence
	slices.Reverse(collected)

	log.Printf("📋 Completed successfully - collected %d human messages from channel %s (examined %d)",
		len(collected), channelID, examined)
	return collected, nil
}
