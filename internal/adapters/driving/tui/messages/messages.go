// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLogin is the login form shown while anonymous.
	ViewLogin ViewType = iota
	// ViewDashboard is the search dashboard shown while logged in.
	ViewDashboard
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// LoggedIn signals a session was opened.
type LoggedIn struct {
	Session domain.Session
}

// LoggedOut signals the session was closed.
type LoggedOut struct{}

// NotificationExpired is delivered when a notification's display time is up.
// It is ignored if a newer notification has replaced the one with ID.
type NotificationExpired struct {
	ID string
}

// ExpireAfter returns a command that delivers NotificationExpired for id after ttl.
func ExpireAfter(id string, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return NotificationExpired{ID: id}
	})
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
