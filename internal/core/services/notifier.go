package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driven"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driving"
	"github.com/custodia-labs/proconnect-cli/internal/logger"
)

// Ensure NotificationService implements the interface.
var _ driving.Notifier = (*NotificationService)(nil)

// NotificationService holds at most one visible notification.
// Each notification schedules its own expiry; a newer one cancels it.
type NotificationService struct {
	scheduler driven.Scheduler
	ttl       time.Duration
	now       func() time.Time

	mu      sync.Mutex
	current *domain.Notification
	pending driven.Timer
}

// NewNotificationService creates a notifier whose notifications expire after ttl.
// A non-positive ttl falls back to domain.NotificationTTL.
func NewNotificationService(scheduler driven.Scheduler, ttl time.Duration) *NotificationService {
	if ttl <= 0 {
		ttl = domain.NotificationTTL
	}
	return &NotificationService{
		scheduler: scheduler,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Notify replaces the current notification and restarts the expiry.
func (s *NotificationService) Notify(message string, kind domain.NotificationKind) domain.Notification {
	n := domain.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Kind:      kind,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		s.pending.Stop()
	}
	s.current = &n
	id := n.ID
	s.pending = s.scheduler.AfterFunc(s.ttl, func() { s.Expire(id) })

	logger.Debug("notification %s (%s): %s", kind, id, message)
	return n
}

// Current returns a copy of the visible notification, or nil.
func (s *NotificationService) Current() *domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	n := *s.current
	return &n
}

// Expire clears the notification if id is still the current one.
// It reports whether anything was cleared.
func (s *NotificationService) Expire(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.ID != id {
		return false
	}
	s.current = nil
	s.pending = nil
	return true
}

// Close cancels the pending expiry. The current notification stays as is.
func (s *NotificationService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}
