package services

import (
	"sync"
	"time"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driven"
)

// fakeTimer records whether it was stopped.
type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler captures scheduled callbacks so tests decide when they fire.
type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) driven.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{delay: d, fn: f}
	s.timers = append(s.timers, t)
	return t
}

// last returns the most recently scheduled timer.
func (s *fakeScheduler) last() *fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.timers) == 0 {
		return nil
	}
	return s.timers[len(s.timers)-1]
}

// fire runs the callback of t as if its delay had elapsed.
func (s *fakeScheduler) fire(t *fakeTimer) {
	s.mu.Lock()
	t.fired = true
	fn := t.fn
	s.mu.Unlock()
	fn()
}

// testCatalog is a small catalog covering several categories, cities and prices.
func testCatalog() []domain.Professional {
	return []domain.Professional{
		{ID: 1, Name: "Raj Kumar", Category: domain.CategoryHomeServices, Subcategory: "Plumber",
			Location: domain.LocationMumbai, Price: 400, PriceUnit: "hour", Rating: 4.8, Reviews: 127},
		{ID: 2, Name: "Priya Sharma", Category: domain.CategoryDesignCreative, Subcategory: "UI/UX Designer",
			Location: domain.LocationBangalore, Price: 1500, PriceUnit: "hour", Rating: 4.9, Reviews: 89},
		{ID: 3, Name: "Amit Patel", Category: domain.CategoryTechnology, Subcategory: "Web Developer",
			Location: domain.LocationDelhi, Price: 2000, PriceUnit: "hour", Rating: 4.7, Reviews: 156},
		{ID: 4, Name: "Sneha Reddy", Category: domain.CategoryEducation, Subcategory: "Math Tutor",
			Location: domain.LocationHyderabad, Price: 800, PriceUnit: "hour", Rating: 4.9, Reviews: 203},
		{ID: 5, Name: "Vikram Singh", Category: domain.CategoryHealthWellness, Subcategory: "Yoga Instructor",
			Location: domain.LocationMumbai, Price: 2500, PriceUnit: "session", Rating: 4.6, Reviews: 74},
	}
}

func newTestCatalogService() *CatalogService {
	c, err := domain.NewCatalog(testCatalog())
	if err != nil {
		panic(err)
	}
	return NewCatalogService(c)
}

func newTestMarketplace() (*Marketplace, *fakeScheduler) {
	sched := &fakeScheduler{}
	m := NewMarketplace(
		NewSessionService(),
		newTestCatalogService(),
		NewNotificationService(sched, domain.NotificationTTL),
	)
	return m, sched
}
