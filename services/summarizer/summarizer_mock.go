package summarizer

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"tldrbot/models"
)

// MockSummarizerService implements the services.SummarizerService interface for testing
type MockSummarizerService struct {
	mock.Mock
}

// SummarizeConversation mocks summary generation
func (m *MockSummarizerService) SummarizeConversation(
	ctx context.Context,
	messages []models.ChannelMessage,
	focus mo.Option[string],
) (*models.ChannelSummary, error) {
	args := m.Called(ctx, messages, focus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChannelSummary), args.Error(1)
}
