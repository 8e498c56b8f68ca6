package memory

import (
	"sync"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is an in-memory implementation of driven.SettingsStore for testing.
type SettingsStore struct {
	mu       sync.RWMutex
	settings *domain.Settings
	saves    int
}

// NewSettingsStore creates an empty in-memory settings store.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

// Load returns the saved settings, or base when nothing was saved.
func (s *SettingsStore) Load(base domain.Settings) (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return base, nil
	}
	return *s.settings, nil
}

// Save stores the settings.
func (s *SettingsStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	s.saves++
	return nil
}

// Path returns a placeholder path.
func (s *SettingsStore) Path() string {
	return "memory"
}

// Saves returns how many times Save was called.
func (s *SettingsStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
