package domain

import "time"

type NotificationType string

const (
	NotificationMatch   NotificationType = "match"
	NotificationMessage NotificationType = "message"
	NotificationReport  NotificationType = "report"
)

// NotificationContext carries the record the notification points back at.
type NotificationContext struct {
	MatchID  *string `json:"match_id,omitempty"`
	ReportID *string `json:"report_id,omitempty"`
}

// Notification is addressed to exactly one identity. Read transitions
// false→true exactly once and the record is never deleted.
type Notification struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	Type      NotificationType    `json:"type"`
	Message   string              `json:"message"`
	Context   NotificationContext `json:"context"`
	Read      bool                `json:"read"`
	CreatedAt time.Time           `json:"created"`
	ReadAt    *time.Time          `json:"read_at,omitempty"`
}
