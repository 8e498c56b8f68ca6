// Package timer provides the wall-clock implementation of driven.Scheduler.
package timer

import (
	"time"

	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driven"
)

// Ensure Scheduler implements the interface.
var _ driven.Scheduler = Scheduler{}

// Scheduler runs callbacks on their own goroutine using time.AfterFunc.
type Scheduler struct{}

// NewScheduler creates a wall-clock scheduler.
func NewScheduler() Scheduler {
	return Scheduler{}
}

// AfterFunc calls f once after d unless the returned timer is stopped first.
func (Scheduler) AfterFunc(d time.Duration, f func()) driven.Timer {
	return time.AfterFunc(d, f)
}
