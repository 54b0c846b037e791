package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"tldrbot/clients"
	"tldrbot/core"
)

// AnthropicClient implements the clients.SummarizerClient interface
type AnthropicClient struct {
	sdkClient   anthropic.Client
	model       anthropic.Model
	maxTokens   int64
	temperature float64
	timeout     time.Duration
}

// NewAnthropicClient creates a new Anthropic summarizer client. SDK retries
// are disabled so that every invocation maps to exactly one provider request.
func NewAnthropicClient(
	apiKey, model string,
	maxTokens int64,
	temperature float64,
	timeout time.Duration,
) clients.SummarizerClient {
	return &AnthropicClient{
		sdkClient: anthropic.NewClient(
			option.WithAPIKey(apiKey),
			option.WithMaxRetries(0),
		),
		model:       anthropic.Model(model),
		maxTokens:   maxTokens,
		temperature: temperature,
		timeout:     timeout,
	}
}

// GenerateText sends a single-shot generation request and returns the text result
func (c *AnthropicClient) GenerateText(
	ctx context.Context,
	params clients.GenerateTextParams,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	message, err := c.sdkClient.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		System: []anthropic.TextBlockParam{
			{Text: params.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(params.Prompt)),
		},
	})
	if err != nil {
		return "", mapAnthropicError(err)
	}

	var builder strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			builder.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(builder.String())
	if text == "" {
		return "", &core.UpstreamError{
			StatusCode: 200,
			Detail:     "model returned an empty response",
		}
	}
	return text, nil
}

// mapAnthropicError converts SDK failures into the error taxonomy the rest of
// the pipeline reports on
func mapAnthropicError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("summarization request timed out: %w", core.ErrTimeout)
	}

	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		return &core.UpstreamError{
			StatusCode: apierr.StatusCode,
			Detail:     apierr.Error(),
		}
	}

	return &core.TransportError{Op: "summarization request", Err: err}
}
