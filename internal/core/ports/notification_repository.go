package ports

import (
	"context"

	"github.com/toolvault/catalog-api/internal/core/domain"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	FindAllByClient(ctx context.Context, clientID string) ([]*domain.Notification, error)
	Save(ctx context.Context, notification *domain.Notification) error
}
