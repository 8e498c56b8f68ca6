package driving

import (
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings: defaults, then file, then environment.
	Get() (domain.Settings, error)

	// Set updates one setting by key and persists it.
	Set(key, value string) error

	// Keys lists the keys accepted by Set.
	Keys() []string

	// Path returns where settings are persisted.
	Path() string
}
