package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driven"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driving"
	"github.com/custodia-labs/proconnect-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys accepted by Set.
const (
	KeyCatalogPath     = "catalog_path"
	KeyNotificationTTL = "notification_ttl"
	KeyLogLevel        = "log_level"
)

// SettingsService resolves settings from defaults, the settings file and
// the environment, in that order.
type SettingsService struct {
	store   driven.SettingsStore
	overlay driven.SettingsOverlay
}

// NewSettingsService creates a new settings service.
// The overlay is optional (can be nil).
func NewSettingsService(store driven.SettingsStore, overlay driven.SettingsOverlay) *SettingsService {
	return &SettingsService{
		store:   store,
		overlay: overlay,
	}
}

// Get returns the effective settings.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings, err := s.store.Load(domain.DefaultSettings())
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	if s.overlay != nil {
		settings, err = s.overlay.Apply(settings)
		if err != nil {
			return domain.Settings{}, fmt.Errorf("apply environment: %w", err)
		}
	}

	return settings, nil
}

// Set updates one key in the settings file.
// Environment overrides are not written back.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.store.Load(domain.DefaultSettings())
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	value = strings.TrimSpace(value)

	switch key {
	case KeyCatalogPath:
		settings.CatalogPath = value
	case KeyNotificationTTL:
		ttl, err := time.ParseDuration(value)
		if err != nil || ttl <= 0 {
			return fmt.Errorf("%w: %s must be a positive duration, got %q", domain.ErrInvalidInput, key, value)
		}
		settings.NotificationTTL = ttl
	case KeyLogLevel:
		level := strings.ToLower(value)
		if !validLogLevel(level) {
			return fmt.Errorf("%w: %s must be one of debug, info, warn, error, got %q",
				domain.ErrInvalidInput, key, value)
		}
		settings.LogLevel = level
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	logger.Debug("setting %s = %s", key, value)

	if err := s.store.Save(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Keys lists the keys accepted by Set.
func (s *SettingsService) Keys() []string {
	return []string{KeyCatalogPath, KeyNotificationTTL, KeyLogLevel}
}

// Path returns the settings file path.
func (s *SettingsService) Path() string {
	return s.store.Path()
}

func validLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
