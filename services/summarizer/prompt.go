package summarizer

import (
	"fmt"
	"strings"

	"github.com/samber/mo"

	"tldrbot/models"
)

// systemInstruction is sent with every summarization request
const systemInstruction = "You are a helpful assistant that summarizes Discord chat conversations."

// defaultFocus guides the model when the invoker supplies no custom focus
const defaultFocus = `Analyze the following Discord messages and provide a clear, concise summary in bullet points.
Focus on:
- Key topics discussed
- Important decisions or conclusions
- Notable questions asked
- Any action items mentioned

Format your response as bullet points. Be concise but capture the essential information.
If the conversation is very short or trivial, still provide a brief summary.`

// promptTemplate combines the focus text and the transcript into the final prompt
const promptTemplate = `%s
Messages are formatted as "Username: Message content" and are in chronological order (oldest first).

---
MESSAGES:
%s
---

Provide your bullet-point summary:`

// FormatTranscript renders messages oldest-first as "author: content" lines,
// one message per line. The result never exceeds budget characters: when the
// full transcript is too long, the oldest messages are dropped first, and the
// newest message is always present (tail-trimmed if it alone is over budget).
// The second return value reports whether anything was dropped.
func FormatTranscript(messages []models.ChannelMessage, budget int) (string, bool) {
	if len(messages) == 0 {
		return "", false
	}

	lines := make([]string, len(messages))
	for i, message := range messages {
		lines[i] = message.AuthorName + ": " + flattenContent(message.Content)
	}

	// walk from the newest message backwards until the budget is hit
	kept := 0
	size := 0
	for i := len(lines) - 1; i >= 0; i-- {
		lineLen := len(lines[i])
		if kept > 0 {
			lineLen++ // joining newline
		}
		if size+lineLen > budget {
			break
		}
		size += lineLen
		kept++
	}

	if kept == 0 {
		// even the newest message alone is over budget - keep its head
		line := lines[len(lines)-1]
		if len(line) > budget {
			line = line[:budget]
		}
		return line, true
	}

	return strings.Join(lines[len(lines)-kept:], "\n"), kept < len(lines)
}

// BuildPrompt assembles the full prompt sent to the model
func BuildPrompt(transcript string, focus mo.Option[string]) string {
	return fmt.Sprintf(promptTemplate, focus.OrElse(defaultFocus), transcript)
}

// flattenContent keeps each message on a single transcript line
func flattenContent(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\n", " ")
}
