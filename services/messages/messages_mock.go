package messages

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tldrbot/models"
)

// MockMessagesService implements the services.MessagesService interface for testing
type MockMessagesService struct {
	mock.Mock
}

// CollectChannelMessages mocks channel history collection
func (m *MockMessagesService) CollectChannelMessages(
	ctx context.Context,
	channelID string,
	params models.CollectParams,
) ([]models.ChannelMessage, error) {
	args := m.Called(ctx, channelID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChannelMessage), args.Error(1)
}
