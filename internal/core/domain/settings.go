package domain

import "time"

// Settings holds the effective application configuration.
type Settings struct {
	// CatalogPath points at a catalog file (.toml or .db).
	// Empty selects the catalog embedded in the binary.
	CatalogPath string

	// NotificationTTL is how long notifications stay visible.
	NotificationTTL time.Duration

	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		CatalogPath:     "",
		NotificationTTL: NotificationTTL,
		LogLevel:        "info",
	}
}
