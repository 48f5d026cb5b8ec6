package noop

import (
	"context"
	"log"

	"reelshelf/internal/domain"
	"reelshelf/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendWelcomeEmail(_ context.Context, toEmail, toName string) error {
	log.Printf("[NOOP EMAIL] Welcome email for %s (%s)", toName, toEmail)
	return nil
}

func (s *noopSender) SendShareNotification(_ context.Context, toEmail, ownerEmail string, permission domain.PermissionLevel) error {
	log.Printf("[NOOP EMAIL] Share notification for %s: %s granted %s access", toEmail, ownerEmail, permission)
	return nil
}
