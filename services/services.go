package services

import (
	"context"

	"github.com/samber/mo"

	"tldrbot/models"
)

// MessagesService defines the interface for channel history collection
type MessagesService interface {
	// CollectChannelMessages retrieves human-authored messages from a channel
	// within the given bounds, ordered oldest-first
	CollectChannelMessages(
		ctx context.Context,
		channelID string,
		params models.CollectParams,
	) ([]models.ChannelMessage, error)
}

// SummarizerService defines the interface for turning collected messages into
// a bullet-point summary
type SummarizerService interface {
	SummarizeConversation(
		ctx context.Context,
		messages []models.ChannelMessage,
		focus mo.Option[string],
	) (*models.ChannelSummary, error)
}
