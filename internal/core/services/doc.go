// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. Deferred work goes through
// driven.Scheduler so tests can fire it deterministically.
package services
