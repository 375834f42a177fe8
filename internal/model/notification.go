package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationSeverity string

const (
	NotificationSeverityInfo     NotificationSeverity = "info"
	NotificationSeverityWarning  NotificationSeverity = "warning"
	NotificationSeverityCritical NotificationSeverity = "critical"
)

type Notification struct {
	Base
	UserID   uuid.UUID            `db:"user_id" json:"user_id"`
	Title    string               `db:"title" json:"title"`
	Message  string               `db:"message" json:"message"`
	Severity NotificationSeverity `db:"severity" json:"severity"`
	ReadAt   *time.Time           `db:"read_at" json:"read_at,omitempty"`
}

// Read reports whether the notification has been acknowledged.
func (n *Notification) Read() bool {
	return n.ReadAt != nil
}

type NotificationFilters struct {
	UnreadOnly bool `form:"unread_only"`
}
