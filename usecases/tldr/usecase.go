package tldr

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/samber/mo"

	"tldrbot/core"
	"tldrbot/models"
	"tldrbot/services"
)

const (
	// DefaultMessageCount is used when the invoker omits the count option
	DefaultMessageCount = 50
	// MaxMessageCount caps how many history messages one invocation may examine
	MaxMessageCount = 2000
	// MaxTimeRange caps how far back the start of the window may reach
	MaxTimeRange = 3 * 24 * time.Hour
)

// Request carries the options of one /tldr invocation
type Request struct {
	ChannelID string
	// Count is how many recent messages to consider, [1, MaxMessageCount]
	Count int
	// Start and End optionally bound the window as relative durations
	// ("1h", "30m", "2d"); when absent the window is unbounded
	Start mo.Option[string]
	End   mo.Option[string]
	// Focus optionally replaces the default summary focus
	Focus mo.Option[string]
}

// TLDRUseCase runs the summarization pipeline for one invocation
type TLDRUseCase struct {
	messagesService   services.MessagesService
	summarizerService services.SummarizerService
}

// NewTLDRUseCase creates a new instance of TLDRUseCase
func NewTLDRUseCase(
	messagesService services.MessagesService,
	summarizerService services.SummarizerService,
) *TLDRUseCase {
	return &TLDRUseCase{
		messagesService:   messagesService,
		summarizerService: summarizerService,
	}
}

// Summarize validates the request, collects the channel window and produces a
// summary. All validation happens before any network call. A None result
// means there were no human messages to summarize - a valid outcome, not an
// error, and the summarizer is never invoked for it.
func (u *TLDRUseCase) Summarize(
	ctx context.Context,
	req Request,
) (mo.Option[*models.ChannelSummary], error) {
	none := mo.None[*models.ChannelSummary]()

	params, err := buildCollectParams(req)
	if err != nil {
		return none, err
	}

	messages, err := u.messagesService.CollectChannelMessages(ctx, req.ChannelID, params)
	if err != nil {
		return none, fmt.Errorf("failed to collect channel messages: %w", err)
	}
	if len(messages) == 0 {
		log.Printf("📋 No human messages found in channel %s - nothing to summarize", req.ChannelID)
		return none, nil
	}

	summary, err := u.summarizerService.SummarizeConversation(ctx, messages, req.Focus)
	if err != nil {
		return none, err
	}
	return mo.Some(summary), nil
}

// buildCollectParams validates the request options and converts them into
// history collection bounds
func buildCollectParams(req Request) (models.CollectParams, error) {
	if req.Count < 1 || req.Count > MaxMessageCount {
		return models.CollectParams{}, &core.ValidationError{
			Reason: fmt.Sprintf("count must be between 1 and %d.", MaxMessageCount),
		}
	}

	params := models.CollectParams{Limit: req.Count}

	var startAgo, endAgo time.Duration
	if start, ok := req.Start.Get(); ok {
		parsed, err := ParseTimeAgo(start)
		if err != nil {
			return models.CollectParams{}, err
		}
		startAgo = parsed
		if startAgo > MaxTimeRange {
			return models.CollectParams{}, &core.ValidationError{
				Reason: fmt.Sprintf("start cannot be more than %d days ago.", int(MaxTimeRange.Hours())/24),
			}
		}
	}
	if end, ok := req.End.Get(); ok {
		parsed, err := ParseTimeAgo(end)
		if err != nil {
			return models.CollectParams{}, err
		}
		endAgo = parsed
	}
	if req.Start.IsPresent() && req.End.IsPresent() && endAgo >= startAgo {
		return models.CollectParams{}, &core.ValidationError{
			Reason: "end must be more recent than start, e.g. start:1h end:5m.",
		}
	}

	now := time.Now().UTC()
	if req.Start.IsPresent() {
		params.After = now.Add(-startAgo)
	}
	if req.End.IsPresent() {
		params.Before = now.Add(-endAgo)
	}
	return params, nil
}
