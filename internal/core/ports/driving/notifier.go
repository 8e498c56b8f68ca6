package driving

import (
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

// Notifier holds the single visible notification and its expiry.
type Notifier interface {
	// Notify replaces the current notification and restarts the expiry.
	Notify(message string, kind domain.NotificationKind) domain.Notification

	// Current returns the visible notification, or nil.
	Current() *domain.Notification

	// Expire clears the notification only if id is still current.
	Expire(id string) bool

	// Close cancels the pending expiry.
	Close()
}
