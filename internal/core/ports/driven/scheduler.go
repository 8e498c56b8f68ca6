package driven

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback
	// already ran or was already stopped.
	Stop() bool
}

// Scheduler runs a callback once after a delay.
// Callbacks may run on another goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}
