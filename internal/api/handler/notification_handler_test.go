package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/toolvault/catalog-api/internal/api/middleware"
	"github.com/toolvault/catalog-api/internal/core/domain"
)

type stubNotificationService struct {
	listFn     func(ctx context.Context, clientID string) ([]*domain.Notification, error)
	markReadFn func(ctx context.Context, id string) error
}

func (s *stubNotificationService) ListByClient(ctx context.Context, clientID string) ([]*domain.Notification, error) {
	return s.listFn(ctx, clientID)
}

func (s *stubNotificationService) MarkRead(ctx context.Context, id string) error {
	return s.markReadFn(ctx, id)
}

func (s *stubNotificationService) Notify(_ context.Context, _ string, _ *domain.Client, _ domain.NotificationType) error {
	return nil
}

func (s *stubNotificationService) NotifyAdmins(_ context.Context, _ string, _ domain.NotificationType) error {
	return nil
}

func TestNotificationHandler_ListByClient_OwnFeed(t *testing.T) {
	stub := &stubNotificationService{
		listFn: func(ctx context.Context, clientID string) ([]*domain.Notification, error) {
			if clientID != "c1" {
				t.Fatalf("unexpected client id: %s", clientID)
			}
			return []*domain.Notification{
				{ID: "n1", ClientID: "c1", Type: domain.NotificationAccepted, Message: "Your proposal for Tool 'Terraform' has been accepted."},
			}, nil
		},
	}
	h := NewNotificationHandler(stub)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/notifications/clients/c1", "")
	c.SetParamNames("clientId")
	c.SetParamValues("c1")
	middleware.SetClient(c, &domain.Client{ID: "c1", Role: domain.RoleUser})

	if err := h.ListByClient(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "n1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestNotificationHandler_ListByClient_ForbidsOtherFeed(t *testing.T) {
	stub := &stubNotificationService{
		listFn: func(ctx context.Context, clientID string) ([]*domain.Notification, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewNotificationHandler(stub)

	c, _ := newHandlerContext(t, http.MethodGet, "/api/notifications/clients/c2", "")
	c.SetParamNames("clientId")
	c.SetParamValues("c2")
	middleware.SetClient(c, &domain.Client{ID: "c1", Role: domain.RoleUser})

	if err := h.ListByClient(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestNotificationHandler_ListByClient_AdminReadsAnyFeed(t *testing.T) {
	stub := &stubNotificationService{
		listFn: func(ctx context.Context, clientID string) ([]*domain.Notification, error) {
			return nil, nil
		},
	}
	h := NewNotificationHandler(stub)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/notifications/clients/c2", "")
	c.SetParamNames("clientId")
	c.SetParamValues("c2")
	middleware.SetClient(c, &domain.Client{ID: "a1", Role: domain.RoleAdmin})

	if err := h.ListByClient(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	var marked string
	stub := &stubNotificationService{
		markReadFn: func(ctx context.Context, id string) error {
			marked = id
			return nil
		},
	}
	h := NewNotificationHandler(stub)

	c, rec := newHandlerContext(t, http.MethodPatch, "/api/notifications/n1/read", "")
	c.SetParamNames("notificationId")
	c.SetParamValues("n1")

	if err := h.MarkRead(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if marked != "n1" {
		t.Fatalf("expected n1 marked, got %q", marked)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNotificationHandler_MarkRead_NotFound(t *testing.T) {
	stub := &stubNotificationService{
		markReadFn: func(ctx context.Context, id string) error {
			return domain.ErrNotificationNotFound
		},
	}
	h := NewNotificationHandler(stub)

	c, _ := newHandlerContext(t, http.MethodPatch, "/api/notifications/n404/read", "")
	c.SetParamNames("notificationId")
	c.SetParamValues("n404")

	if err := h.MarkRead(c); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}
