package driven

import (
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

// SettingsStore persists user settings.
type SettingsStore interface {
	// Load returns the stored settings layered over base.
	// Missing keys keep the value from base.
	Load(base domain.Settings) (domain.Settings, error)

	// Save persists the settings.
	Save(settings domain.Settings) error

	// Path returns the location of the stored settings.
	Path() string
}

// SettingsOverlay applies process-level overrides such as environment variables.
type SettingsOverlay interface {
	Apply(settings domain.Settings) (domain.Settings, error)
}
