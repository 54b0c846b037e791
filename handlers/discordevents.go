package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"tldrbot/core"
	"tldrbot/usecases/tldr"
)

const commandName = "tldr"

// DiscordEventsHandler owns the Discord session lifecycle and dispatches
// /tldr invocations into the summarization pipeline
type DiscordEventsHandler struct {
	discordSDKClient  *discordgo.Session
	tldrUseCase       *tldr.TLDRUseCase
	invocationTimeout time.Duration
}

// NewDiscordEventsHandler wires the handler into an existing Discord session
func NewDiscordEventsHandler(
	session *discordgo.Session,
	tldrUseCase *tldr.TLDRUseCase,
	invocationTimeout time.Duration,
) *DiscordEventsHandler {
	handler := &DiscordEventsHandler{
		discordSDKClient:  session,
		tldrUseCase:       tldrUseCase,
		invocationTimeout: invocationTimeout,
	}

	// Register event handlers
	session.AddHandler(handler.handleReadyEvent)
	session.AddHandler(handler.handleInteractionCreatedEvent)

	// Slash command interactions and history reads need no privileged intents
	session.Identify.Intents = discordgo.IntentsGuilds

	return handler
}

// StartBot opens the Discord connection and starts listening for events
func (h *DiscordEventsHandler) StartBot() error {
	if err := h.discordSDKClient.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Printf("🤖 Discord bot is now running and listening for events")
	return nil
}

// StopBot gracefully closes the Discord connection
func (h *DiscordEventsHandler) StopBot() {
	h.discordSDKClient.Close()
}

// handleReadyEvent registers the /tldr application command once the gateway
// session is established
func (h *DiscordEventsHandler) handleReadyEvent(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("🤖 Logged in as %s (ID: %s), connected to %d guild(s)",
		r.User.Username, r.User.ID, len(r.Guilds))

	minCount := float64(1)
	command := &discordgo.ApplicationCommand{
		Name:        commandName,
		Description: "Summarize recent messages in this channel as bullet points",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type: discordgo.ApplicationCommandOptionInteger,
				Name: "count",
				Description: fmt.Sprintf("How many recent messages to consider (1-%d, default %d)",
					tldr.MaxMessageCount, tldr.DefaultMessageCount),
				MinValue: &minCount,
				MaxValue: float64(tldr.MaxMessageCount),
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "start",
				Description: "How far back to start, e.g. 1h, 30m or 2d",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "end",
				Description: "How far back to stop, e.g. 5m",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "focus",
				Description: "Custom focus for the summary, e.g. technical decisions",
			},
		},
	}

	if _, err := s.ApplicationCommandCreate(r.User.ID, "", command); err != nil {
		log.Printf("❌ Failed to register /%s command: %v", commandName, err)
		return
	}
	log.Printf("✅ Registered /%s command", commandName)
}

// handleInteractionCreatedEvent runs one summarization invocation. discordgo
// dispatches each event on its own goroutine, so concurrent invocations are
// independent units of work sharing nothing but read-only configuration.
func (h *DiscordEventsHandler) handleInteractionCreatedEvent(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	if data.Name != commandName {
		return
	}

	invocationID := core.NewID("inv")
	log.Printf("📨 /%s invoked in channel %s (invocation %s)", commandName, i.ChannelID, invocationID)

	// Acknowledge immediately - the pipeline takes longer than Discord's
	// 3 second interaction deadline
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.Printf("❌ Failed to acknowledge invocation %s: %v", invocationID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.invocationTimeout)
	defer cancel()

	request := buildRequest(i.ChannelID, data.Options)
	maybeSummary, err := h.tldrUseCase.Summarize(ctx, request)
	if err != nil {
		log.Printf("❌ Invocation %s failed: %v", invocationID, err)
		h.sendFollowup(s, i, &discordgo.WebhookParams{Content: userMessageForError(err)})
		return
	}
	if !maybeSummary.IsPresent() {
		h.sendFollowup(s, i, &discordgo.WebhookParams{
			Content: "❌ No messages found to summarize. " +
				"Make sure there are recent messages from users (not bots) in this channel.",
		})
		return
	}

	summary := maybeSummary.MustGet()
	embeds := buildSummaryEmbeds(summary, request)
	h.sendFollowup(s, i, &discordgo.WebhookParams{Embeds: embeds})
	log.Printf("✅ Invocation %s completed - summarized %d messages into %d embed(s)",
		invocationID, summary.MessageCount, len(embeds))
}

// buildRequest maps interaction options onto a pipeline request, applying
// defaults for absent options
func buildRequest(
	channelID string,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) tldr.Request {
	request := tldr.Request{
		ChannelID: channelID,
		Count:     tldr.DefaultMessageCount,
		Start:     mo.None[string](),
		End:       mo.None[string](),
		Focus:     mo.None[string](),
	}

	for _, option := range options {
		switch option.Name {
		case "count":
			request.Count = int(option.IntValue())
		case "start":
			request.Start = mo.Some(option.StringValue())
		case "end":
			request.End = mo.Some(option.StringValue())
		case "focus":
			request.Focus = mo.Some(option.StringValue())
		}
	}
	return request
}

func (h *DiscordEventsHandler) sendFollowup(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	params *discordgo.WebhookParams,
) {
	if _, err := s.FollowupMessageCreate(i.Interaction, true, params); err != nil {
		log.Printf("❌ Failed to send followup message: %v", err)
	}
}

// userMessageForError converts a pipeline error into the single line shown to
// the invoking user. Internal detail stays in the logs.
func userMessageForError(err error) string {
	switch {
	case core.IsValidationError(err):
		var validationErr *core.ValidationError
		errors.As(err, &validationErr)
		return "❌ " + validationErr.Reason
	case core.IsPermissionDeniedError(err):
		return "❌ I don't have permission to read message history in this channel. " +
			"Make sure I have the Read Message History permission."
	case core.IsTimeoutError(err):
		return "❌ The summarization service took too long to respond. Please try again."
	case core.IsUpstreamError(err):
		return "❌ The summarization service is unavailable right now. Please try again later."
	default:
		return "❌ Something went wrong while generating the summary. Please try again."
	}
}
