package ports

import (
	"context"

	"github.com/toolvault/catalog-api/internal/core/domain"
)

// NotificationService records notification events for clients.
// Actual delivery (push, email) is outside this service; it only persists
// the records consumers read back.
type NotificationService interface {
	ListByClient(ctx context.Context, clientID string) ([]*domain.Notification, error)
	Notify(ctx context.Context, message string, client *domain.Client, t domain.NotificationType) error
	// NotifyAdmins records one notification per administrator. With zero
	// administrators it is a silent no-op, not an error.
	NotifyAdmins(ctx context.Context, message string, t domain.NotificationType) error
	MarkRead(ctx context.Context, id string) error
}
