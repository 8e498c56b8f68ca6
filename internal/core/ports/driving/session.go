package driving

import (
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

// SessionService tracks the single authenticated identity of the process.
type SessionService interface {
	// Login trims and validates the credentials and replaces the session.
	Login(name, email string, role domain.Role) (*domain.Session, error)

	// Logout clears the session. It is a no-op when anonymous.
	Logout()

	// Current returns the active session, or nil.
	Current() *domain.Session
}
