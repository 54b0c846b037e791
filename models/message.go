package models

import "time"

// ChannelMessage is one human-authored message collected from a channel.
// It lives only for the duration of a single invocation.
type ChannelMessage struct {
	AuthorName string
	Content    string
	SentAt     time.Time
}

// CollectParams bounds a single history collection run
type CollectParams struct {
	// Limit caps how many raw history messages are examined; the collector
	// never returns more than this many messages
	Limit int
	// After and Before bound the collection window; zero values mean unbounded
	After  time.Time
	Before time.Time
}
