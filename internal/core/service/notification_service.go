package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/toolvault/catalog-api/internal/api/metrics"
	"github.com/toolvault/catalog-api/internal/core/domain"
	"github.com/toolvault/catalog-api/internal/core/ports"
)

// NotificationService records notification events. Delivery beyond the
// persisted record (push, email) is someone else's problem.
type NotificationService struct {
	notifications ports.NotificationRepository
	clients       ports.ClientRepository
	log           zerolog.Logger
}

func NewNotificationService(
	notifications ports.NotificationRepository,
	clients ports.ClientRepository,
	log zerolog.Logger,
) *NotificationService {
	return &NotificationService{notifications: notifications, clients: clients, log: log}
}

func (s *NotificationService) ListByClient(ctx context.Context, clientID string) ([]*domain.Notification, error) {
	return s.notifications.FindAllByClient(ctx, clientID)
}

// Notify persists an unread notification for the client. Storage failures
// propagate to the caller unrecovered.
func (s *NotificationService) Notify(ctx context.Context, message string, client *domain.Client, t domain.NotificationType) error {
	notification := &domain.Notification{
		ClientID:     client.ID,
		Type:         t,
		Message:      message,
		CreationDate: time.Now().UTC(),
		Read:         false,
	}

	if _, err := s.notifications.Create(ctx, notification); err != nil {
		return fmt.Errorf("notify client %s: %w", client.ID, err)
	}

	metrics.NotificationsCreatedTotal.WithLabelValues(string(t)).Inc()
	return nil
}

// NotifyAdmins records one notification per administrator. Zero
// administrators is a silent no-op.
func (s *NotificationService) NotifyAdmins(ctx context.Context, message string, t domain.NotificationType) error {
	admins, err := s.clients.FindAllByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("notify admins: %w", err)
	}
	if len(admins) == 0 {
		s.log.Debug().Str("type", string(t)).Msg("no administrators to notify")
		return nil
	}

	for _, admin := range admins {
		if err := s.Notify(ctx, message, admin, t); err != nil {
			return err
		}
	}
	return nil
}

// MarkRead flips the read flag of a single notification.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	notification, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		return err
	}

	notification.Read = true
	if err := s.notifications.Save(ctx, notification); err != nil {
		return fmt.Errorf("mark notification %s read: %w", id, err)
	}
	return nil
}
