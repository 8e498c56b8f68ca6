package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

func TestNewSettingsStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewSettingsStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewSettingsStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	_, err := NewSettingsStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSettingsStore_Load_MissingFileReturnsBase(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	got, err := store.Load(domain.DefaultSettings())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestSettingsStore_SaveThenLoad(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)
	want := domain.Settings{
		CatalogPath:     "/srv/catalog.db",
		NotificationTTL: 5 * time.Second,
		LogLevel:        "debug",
	}

	require.NoError(t, store.Save(want))
	got, err := store.Load(domain.DefaultSettings())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsStore_Load_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("log_level = \"error\"\n"), 0600))
	store, err := NewSettingsStore(dir)
	require.NoError(t, err)

	got, err := store.Load(domain.DefaultSettings())

	require.NoError(t, err)
	assert.Equal(t, "error", got.LogLevel)
	assert.Equal(t, domain.NotificationTTL, got.NotificationTTL)
	assert.Empty(t, got.CatalogPath)
}

func TestSettingsStore_Load_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))
	store, err := NewSettingsStore(dir)
	require.NoError(t, err)

	_, err = store.Load(domain.DefaultSettings())

	assert.Error(t, err)
}

func TestSettingsStore_Load_InvalidTTL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("notification_ttl = \"later\"\n"), 0600))
	store, err := NewSettingsStore(dir)
	require.NoError(t, err)

	_, err = store.Load(domain.DefaultSettings())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsStore_Save_FilePermissions(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(domain.DefaultSettings()))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
