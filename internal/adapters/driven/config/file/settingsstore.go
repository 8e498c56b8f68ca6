package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// settingsFile is the on-disk shape of config.toml.
// Absent keys keep their defaults.
type settingsFile struct {
	CatalogPath     *string `toml:"catalog_path,omitempty"`
	NotificationTTL *string `toml:"notification_ttl,omitempty"`
	LogLevel        *string `toml:"log_level,omitempty"`
}

// SettingsStore is a file-based implementation of driven.SettingsStore using TOML.
// Settings are stored in config.toml within the proconnect config directory.
type SettingsStore struct {
	mu       sync.RWMutex
	filePath string
}

// NewSettingsStore creates a new TOML-based settings store.
// If configDir is empty, defaults to ~/.proconnect/config.toml.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".proconnect")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SettingsStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads config.toml and layers it over base.
// A missing file yields base unchanged.
func (s *SettingsStore) Load(base domain.Settings) (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return base, err
	}

	var f settingsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("parse %s: %w", s.filePath, err)
	}

	settings := base
	if f.CatalogPath != nil {
		settings.CatalogPath = *f.CatalogPath
	}
	if f.NotificationTTL != nil {
		ttl, err := time.ParseDuration(*f.NotificationTTL)
		if err != nil {
			return base, fmt.Errorf("%w: notification_ttl %q", domain.ErrInvalidInput, *f.NotificationTTL)
		}
		settings.NotificationTTL = ttl
	}
	if f.LogLevel != nil {
		settings.LogLevel = *f.LogLevel
	}
	return settings, nil
}

// Save writes every setting to config.toml.
func (s *SettingsStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ttl := settings.NotificationTTL.String()
	data, err := toml.Marshal(settingsFile{
		CatalogPath:     &settings.CatalogPath,
		NotificationTTL: &ttl,
		LogLevel:        &settings.LogLevel,
	})
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}
