package discord

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tldrbot/clients"
)

// MockDiscordClient implements the clients.DiscordClient interface for testing
type MockDiscordClient struct {
	mock.Mock
}

// GetBotUser mocks fetching the authenticated bot user
func (m *MockDiscordClient) GetBotUser() (*clients.DiscordBotUser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordBotUser), args.Error(1)
}

// GetChannelMessages mocks fetching a page of channel history
func (m *MockDiscordClient) GetChannelMessages(
	ctx context.Context,
	channelID string,
	limit int,
	beforeID string,
) ([]clients.DiscordMessage, error) {
	args := m.Called(ctx, channelID, limit, beforeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clients.DiscordMessage), args.Error(1)
}
