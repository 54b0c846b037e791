package clients

import "time"

// DiscordBotUser represents Discord bot user information
type DiscordBotUser struct {
	ID       string
	Username string
}

// DiscordMessage represents one message from a channel's history
type DiscordMessage struct {
	ID          string
	AuthorID    string
	AuthorName  string
	AuthorIsBot bool
	Content     string
	Timestamp   time.Time
}

// GenerateTextParams holds the payload for a single generation request
type GenerateTextParams struct {
	System string
	Prompt string
}
