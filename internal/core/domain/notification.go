package domain

import (
	"errors"
	"time"
)

// NotificationType tags the lifecycle event a notification reports.
type NotificationType string

const (
	NotificationNewProposal NotificationType = "new_proposal"
	NotificationAccepted    NotificationType = "accepted"
	NotificationRefused     NotificationType = "refused"
	NotificationExpired     NotificationType = "expired"
	NotificationReminder    NotificationType = "reminder"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification is a persisted message addressed to one client. Records are
// created unread and only ever mutated to flip the read flag.
type Notification struct {
	ID           string           `json:"id" bson:"_id,omitempty"`
	ClientID     string           `json:"client_id" bson:"client_id"`
	Type         NotificationType `json:"type" bson:"type"`
	Message      string           `json:"message" bson:"message"`
	CreationDate time.Time        `json:"creation_date" bson:"creation_date"`
	Read         bool             `json:"read" bson:"read"`
}
