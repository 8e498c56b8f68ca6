package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driving"
	"github.com/custodia-labs/proconnect-cli/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// loginForm is the validated shape of a login attempt.
type loginForm struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
	Role  string `validate:"required,oneof=user professional admin support"`
}

// SessionService holds the single session of the process.
type SessionService struct {
	mu       sync.RWMutex
	current  *domain.Session
	validate *validator.Validate
}

// NewSessionService creates an anonymous session service.
func NewSessionService() *SessionService {
	return &SessionService{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Login trims the credentials, validates them and replaces the session.
// Nothing changes when validation fails.
func (s *SessionService) Login(name, email string, role domain.Role) (*domain.Session, error) {
	form := loginForm{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Role:  string(role),
	}

	if err := s.validate.Struct(form); err != nil {
		logger.Debug("login rejected: %v", err)
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, invalidFields(err))
	}

	session := &domain.Session{
		Name:  form.Name,
		Email: form.Email,
		Role:  domain.Role(form.Role),
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	logger.Debug("session opened for %s as %s", session.Name, session.Role)

	copied := *session
	return &copied, nil
}

// Logout clears the session.
func (s *SessionService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns a copy of the active session, or nil.
func (s *SessionService) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// invalidFields lists the lowercased names of the fields that failed validation.
func invalidFields(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		names = append(names, strings.ToLower(fe.Field()))
	}
	return strings.Join(names, ", ")
}
