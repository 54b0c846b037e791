package models

// ChannelSummary is the result of one summarization invocation
type ChannelSummary struct {
	// Text is the bullet-point summary returned by the model
	Text string
	// MessageCount is how many human messages were summarized
	MessageCount int
	// Truncated reports whether the transcript had to drop oldest messages
	// to fit the prompt character budget
	Truncated bool
}
