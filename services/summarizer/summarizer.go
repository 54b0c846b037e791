package summarizer

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"tldrbot/clients"
	"tldrbot/models"
)

// SummarizerService turns a collected conversation into a bullet-point summary
type SummarizerService struct {
	summarizerClient clients.SummarizerClient
	promptCharBudget int
}

// NewSummarizerService creates a new instance of SummarizerService
func NewSummarizerService(
	summarizerClient clients.SummarizerClient,
	promptCharBudget int,
) *SummarizerService {
	return &SummarizerService{
		summarizerClient: summarizerClient,
		promptCharBudget: promptCharBudget,
	}
}

// SummarizeConversation formats the messages into a prompt and runs a single
// generation request. The caller is responsible for not passing an empty
// conversation - there is nothing sensible to ask the model for.
func (s *SummarizerService) SummarizeConversation(
	ctx context.Context,
	messages []models.ChannelMessage,
	focus mo.Option[string],
) (*models.ChannelSummary, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("cannot summarize an empty conversation")
	}

	log.Printf("📋 Starting to summarize %d messages", len(messages))

	transcript, truncated := FormatTranscript(messages, s.promptCharBudget)
	if truncated {
		log.Printf("⚠️ Transcript exceeded %d character budget - oldest messages dropped", s.promptCharBudget)
	}

	text, err := s.summarizerClient.GenerateText(ctx, clients.GenerateTextParams{
		System: systemInstruction,
		Prompt: BuildPrompt(transcript, focus),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary: %w", err)
	}

	log.Printf("📋 Completed successfully - generated summary for %d messages", len(messages))
	return &models.ChannelSummary{
		Text:         text,
		MessageCount: len(messages),
		Truncated:    truncated,
	}, nil
}
