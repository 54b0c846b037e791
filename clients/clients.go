package clients

import "context"

// DiscordClient defines the interface for Discord API operations
type DiscordClient interface {
	// Bot operations
	GetBotUser() (*DiscordBotUser, error)

	// History operations. GetChannelMessages fetches up to limit messages from
	// a channel's history in newest-first platform order; a non-empty beforeID
	// pages further back.
	GetChannelMessages(ctx context.Context, channelID string, limit int, beforeID string) ([]DiscordMessage, error)
}

// SummarizerClient defines the interface for single-shot text generation.
// Implementations make exactly one attempt; callers decide on retry policy.
type SummarizerClient interface {
	GenerateText(ctx context.Context, params GenerateTextParams) (string, error)
}
