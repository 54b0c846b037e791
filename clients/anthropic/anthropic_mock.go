package anthropic

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tldrbot/clients"
)

// MockSummarizerClient implements the clients.SummarizerClient interface for testing
type MockSummarizerClient struct {
	mock.Mock
}

// GenerateText mocks a single-shot generation request
func (m *MockSummarizerClient) GenerateText(
	ctx context.Context,
	params clients.GenerateTextParams,
) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}
