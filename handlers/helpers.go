package handlers

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"tldrbot/models"
	"tldrbot/usecases/tldr"
)

// Discord embed limits
const (
	embedDescriptionLimit = 4096
	maxEmbedsPerMessage   = 10
	embedColorBlue        = 0x3498db
)

// buildSummaryEmbeds renders a summary as one or more embeds: title on the
// first, footer on the last, description chunks in between
func buildSummaryEmbeds(summary *models.ChannelSummary, request tldr.Request) []*discordgo.MessageEmbed {
	chunks := splitIntoEmbedChunks(summary.Text, embedDescriptionLimit)
	if len(chunks) > maxEmbedsPerMessage {
		chunks = chunks[:maxEmbedsPerMessage]
	}

	footer := buildFooterText(summary, request)
	embeds := make([]*discordgo.MessageEmbed, 0, len(chunks))
	for i, chunk := range chunks {
		embed := &discordgo.MessageEmbed{
			Description: chunk,
			Color:       embedColorBlue,
		}
		if i == 0 {
			embed.Title = "📋 TL;DR Summary"
		}
		if i == len(chunks)-1 {
			embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
		}
		embeds = append(embeds, embed)
	}
	return embeds
}

// splitIntoEmbedChunks splits text into pieces that fit an embed description,
// preferring newline boundaries so bullet points stay intact
func splitIntoEmbedChunks(text string, maxLength int) []string {
	if len(text) <= maxLength {
		return []string{text}
	}

	var chunks []string
	remaining := text
	for remaining != "" {
		if len(remaining) <= maxLength {
			chunks = append(chunks, remaining)
			break
		}

		splitPoint := maxLength
		// split at the last newline within the limit unless it is too early
		if lastNewline := strings.LastIndex(remaining[:maxLength], "\n"); lastNewline > maxLength/2 {
			splitPoint = lastNewline + 1
		}

		chunks = append(chunks, strings.TrimRight(remaining[:splitPoint], " \n"))
		remaining = strings.TrimLeft(remaining[splitPoint:], " \n")
	}
	return chunks
}

func buildFooterText(summary *models.ChannelSummary, request tldr.Request) string {
	footer := fmt.Sprintf("Summarized %d messages", summary.MessageCount)
	if summary.Truncated {
		footer += " (oldest trimmed to fit)"
	}
	if start, ok := request.Start.Get(); ok {
		footer += fmt.Sprintf(" • %s → %s", start, request.End.OrElse("now"))
	}
	if focus, ok := request.Focus.Get(); ok {
		footer += " • Focus: " + truncateText(focus, 50)
	}
	return footer
}

func truncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength] + "..."
}
