package domain

import "time"

// NotificationTTL is how long a notification stays visible.
const NotificationTTL = 3500 * time.Millisecond

// NotificationKind selects how a notification is styled.
type NotificationKind string

// Available notification kinds.
const (
	NotificationInfo    NotificationKind = "info"
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient message produced by a user-facing action.
type Notification struct {
	// ID identifies this notification so stale expiries can be ignored.
	ID string

	// Message is the text shown to the user.
	Message string

	// Kind selects the styling.
	Kind NotificationKind

	// CreatedAt is when the notification was raised.
	CreatedAt time.Time
}
