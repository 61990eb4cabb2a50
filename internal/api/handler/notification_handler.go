package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toolvault/catalog-api/internal/core/domain"
	"github.com/toolvault/catalog-api/internal/core/ports"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListByClient returns a client's notifications, newest first. A client may
// only read their own feed; admins may read anyone's.
//
// @Summary      List a client's notifications
// @Tags         notifications
// @Produce      json
// @Param        clientId  path     string  true  "Client ID"
// @Success      200       {array}  domain.Notification
// @Failure      403       {object} map[string]string
// @Router       /api/notifications/clients/{clientId} [get]
func (h *NotificationHandler) ListByClient(c echo.Context) error {
	actor, err := currentClient(c)
	if err != nil {
		return err
	}

	clientID := c.Param("clientId")
	if clientID != actor.ID && !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	notifications, err := h.notificationService.ListByClient(c.Request().Context(), clientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkRead flags a notification as read.
//
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Param        notificationId  path      string  true  "Notification ID"
// @Success      200             {object}  messageResponse
// @Failure      404             {object}  map[string]string
// @Router       /api/notifications/{notificationId}/read [patch]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id := c.Param("notificationId")
	if err := h.notificationService.MarkRead(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("Notification with id %s read successfully.", id)})
}
