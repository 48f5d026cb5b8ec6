package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"reelshelf/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	args := m.Called(ctx, toEmail, toName)
	return args.Error(0)
}

func (m *MockEmailSender) SendShareNotification(ctx context.Context, toEmail, ownerEmail string, permission domain.PermissionLevel) error {
	args := m.Called(ctx, toEmail, ownerEmail, permission)
	return args.Error(0)
}
