package models

import "time"

// NotificationSeverity hints how a client should render a notification.
// The set is conventional, not exhaustively validated.
type NotificationSeverity string

const (
	SeverityInfo    NotificationSeverity = "info"
	SeverityWarning NotificationSeverity = "warning"
	SeveritySuccess NotificationSeverity = "success"
)

// Notification targets a single recipient. Records are append-only and are
// never deleted; Read flips once via mark-read.
type Notification struct {
	ID        string               `json:"id"`
	UserEmail string               `json:"user_email"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Severity  NotificationSeverity `json:"severity"`
	Read      bool                 `json:"read"`
	Timestamp time.Time            `json:"timestamp"`
}
