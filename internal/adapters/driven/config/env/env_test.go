package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

func TestOverlay_Apply_NoVariables(t *testing.T) {
	o := NewOverlayFromMap(map[string]string{})

	got, err := o.Apply(domain.DefaultSettings())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestOverlay_Apply_AllVariables(t *testing.T) {
	o := NewOverlayFromMap(map[string]string{
		"PROCONNECT_CATALOG":          "/data/catalog.db",
		"PROCONNECT_NOTIFICATION_TTL": "2s",
		"PROCONNECT_LOG_LEVEL":        "DEBUG",
	})

	got, err := o.Apply(domain.DefaultSettings())

	require.NoError(t, err)
	assert.Equal(t, "/data/catalog.db", got.CatalogPath)
	assert.Equal(t, 2*time.Second, got.NotificationTTL)
	assert.Equal(t, "debug", got.LogLevel)
}

func TestOverlay_Apply_PartialKeepsOthers(t *testing.T) {
	base := domain.Settings{CatalogPath: "/from/file.toml", NotificationTTL: time.Second, LogLevel: "warn"}
	o := NewOverlayFromMap(map[string]string{"PROCONNECT_LOG_LEVEL": "error"})

	got, err := o.Apply(base)

	require.NoError(t, err)
	assert.Equal(t, "/from/file.toml", got.CatalogPath)
	assert.Equal(t, time.Second, got.NotificationTTL)
	assert.Equal(t, "error", got.LogLevel)
}

func TestOverlay_Apply_InvalidDuration(t *testing.T) {
	o := NewOverlayFromMap(map[string]string{"PROCONNECT_NOTIFICATION_TTL": "soon"})

	_, err := o.Apply(domain.DefaultSettings())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOverlay_Apply_NonPositiveDuration(t *testing.T) {
	o := NewOverlayFromMap(map[string]string{"PROCONNECT_NOTIFICATION_TTL": "0s"})

	_, err := o.Apply(domain.DefaultSettings())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
