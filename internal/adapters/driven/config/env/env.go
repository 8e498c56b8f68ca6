// Package env overlays settings with values from the process environment.
package env

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driven"
)

// Ensure Overlay implements the interface.
var _ driven.SettingsOverlay = (*Overlay)(nil)

// variables lists the recognised environment variables.
// Unset variables leave the corresponding setting alone.
type variables struct {
	CatalogPath     *string        `env:"PROCONNECT_CATALOG, noinit"`
	NotificationTTL *time.Duration `env:"PROCONNECT_NOTIFICATION_TTL, noinit"`
	LogLevel        *string        `env:"PROCONNECT_LOG_LEVEL, noinit"`
}

// Overlay applies PROCONNECT_* environment variables to settings.
type Overlay struct {
	lookuper envconfig.Lookuper
}

// NewOverlay reads from the real process environment.
func NewOverlay() *Overlay {
	return &Overlay{lookuper: envconfig.OsLookuper()}
}

// NewOverlayFromMap reads from a fixed map, for tests and embedding.
func NewOverlayFromMap(values map[string]string) *Overlay {
	return &Overlay{lookuper: envconfig.MapLookuper(values)}
}

// Apply returns settings with any environment overrides applied.
func (o *Overlay) Apply(settings domain.Settings) (domain.Settings, error) {
	var vars variables
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &vars,
		Lookuper: o.lookuper,
	})
	if err != nil {
		return settings, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if vars.CatalogPath != nil {
		settings.CatalogPath = strings.TrimSpace(*vars.CatalogPath)
	}
	if vars.NotificationTTL != nil {
		if *vars.NotificationTTL <= 0 {
			return settings, fmt.Errorf("%w: PROCONNECT_NOTIFICATION_TTL must be positive", domain.ErrInvalidInput)
		}
		settings.NotificationTTL = *vars.NotificationTTL
	}
	if vars.LogLevel != nil {
		settings.LogLevel = strings.ToLower(strings.TrimSpace(*vars.LogLevel))
	}
	return settings, nil
}
