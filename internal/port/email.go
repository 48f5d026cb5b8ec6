package port

import (
	"context"

	"reelshelf/internal/domain"
)

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	SendWelcomeEmail(ctx context.Context, toEmail, toName string) error
	SendShareNotification(ctx context.Context, toEmail, ownerEmail string, permission domain.PermissionLevel) error
}
