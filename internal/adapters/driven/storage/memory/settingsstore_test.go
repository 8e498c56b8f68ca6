package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

func TestSettingsStore_Load_ReturnsBaseWhenEmpty(t *testing.T) {
	store := NewSettingsStore()

	got, err := store.Load(domain.DefaultSettings())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestSettingsStore_SaveThenLoad(t *testing.T) {
	store := NewSettingsStore()
	saved := domain.Settings{CatalogPath: "/tmp/catalog.toml", NotificationTTL: time.Second, LogLevel: "debug"}

	require.NoError(t, store.Save(saved))

	got, err := store.Load(domain.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.Equal(t, 1, store.Saves())
}

func TestSettingsStore_Path(t *testing.T) {
	assert.Equal(t, "memory", NewSettingsStore().Path())
}
