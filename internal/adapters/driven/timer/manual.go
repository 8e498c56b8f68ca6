package timer

import (
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driven"
)

// Ensure ManualScheduler implements the interface.
var _ driven.Scheduler = (*ManualScheduler)(nil)

// ManualScheduler is a driven.Scheduler driven by Advance instead of the wall clock.
// Tests use it to fire notification expiry deterministically.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	pending []*manualTimer
}

type manualTimer struct {
	owner *ManualScheduler
	due   time.Duration
	fn    func()
	done  bool
}

// NewManualScheduler creates a scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc schedules f to run once Advance moves past d.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) driven.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{owner: s, due: s.now + d, fn: f}
	s.pending = append(s.pending, t)
	return t
}

// Stop cancels the timer. It reports whether the call prevented f from running.
func (t *manualTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// Advance moves the clock forward by d and runs every callback that became due,
// in due order. Callbacks run without the scheduler lock held.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*manualTimer
	remaining := s.pending[:0]
	for _, t := range s.pending {
		switch {
		case t.done:
		case t.due <= s.now:
			t.done = true
			due = append(due, t)
		default:
			remaining = append(remaining, t)
		}
	}
	s.pending = remaining
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })
	for _, t := range due {
		t.fn()
	}
}

// Pending returns how many timers are still waiting.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.pending {
		if !t.done {
			n++
		}
	}
	return n
}
