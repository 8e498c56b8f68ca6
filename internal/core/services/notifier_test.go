package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

func TestNotificationService_Notify(t *testing.T) {
	sched := &fakeScheduler{}
	s := NewNotificationService(sched, time.Second)

	n := s.Notify("hello", domain.NotificationInfo)

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "hello", n.Message)
	assert.Equal(t, domain.NotificationInfo, n.Kind)
	require.NotNil(t, s.Current())
	assert.Equal(t, n, *s.Current())
	require.NotNil(t, sched.last())
	assert.Equal(t, time.Second, sched.last().delay)
}

func TestNotificationService_DefaultTTL(t *testing.T) {
	sched := &fakeScheduler{}
	s := NewNotificationService(sched, 0)

	s.Notify("hello", domain.NotificationInfo)

	assert.Equal(t, domain.NotificationTTL, sched.last().delay)
}

func TestNotificationService_ExpiresAfterTTL(t *testing.T) {
	sched := &fakeScheduler{}
	s := NewNotificationService(sched, domain.NotificationTTL)
	s.Notify("hello", domain.NotificationSuccess)

	sched.fire(sched.last())

	assert.Nil(t, s.Current())
}

func TestNotificationService_NewerReplacesAndCancelsOlder(t *testing.T) {
	sched := &fakeScheduler{}
	s := NewNotificationService(sched, domain.NotificationTTL)

	s.Notify("first", domain.NotificationInfo)
	first := sched.last()
	second := s.Notify("second", domain.NotificationSuccess)

	assert.True(t, first.stopped)
	assert.Equal(t, "second", s.Current().Message)

	// A stale expiry that raced the cancel must not clear the newer notification.
	sched.fire(first)
	require.NotNil(t, s.Current())
	assert.Equal(t, second.ID, s.Current().ID)

	sched.fire(sched.last())
	assert.Nil(t, s.Current())
}

func TestNotificationService_Expire_UnknownID(t *testing.T) {
	s := NewNotificationService(&fakeScheduler{}, time.Second)
	s.Notify("hello", domain.NotificationInfo)

	assert.False(t, s.Expire("not-the-id"))
	assert.NotNil(t, s.Current())
}

func TestNotificationService_Expire_WhenEmpty(t *testing.T) {
	s := NewNotificationService(&fakeScheduler{}, time.Second)

	assert.False(t, s.Expire("anything"))
}

func TestNotificationService_Close_CancelsPendingExpiry(t *testing.T) {
	sched := &fakeScheduler{}
	s := NewNotificationService(sched, time.Second)
	s.Notify("hello", domain.NotificationInfo)

	s.Close()

	assert.True(t, sched.last().stopped)
}

func TestNotificationService_Close_WithoutNotification(t *testing.T) {
	s := NewNotificationService(&fakeScheduler{}, time.Second)

	assert.NotPanics(t, s.Close)
}

func TestNotificationService_UniqueIDs(t *testing.T) {
	s := NewNotificationService(&fakeScheduler{}, time.Second)

	a := s.Notify("same", domain.NotificationInfo)
	b := s.Notify("same", domain.NotificationInfo)

	assert.NotEqual(t, a.ID, b.ID)
}
