package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"", FormatEmbedded},
		{"catalog.toml", FormatTOML},
		{"/data/Catalog.TOML", FormatTOML},
		{"catalog.db", FormatSQLite},
		{"catalog.sqlite", FormatSQLite},
		{"catalog.sqlite3", FormatSQLite},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	_, err := DetectFormat("catalog.csv")

	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestOpen_Embedded(t *testing.T) {
	h, err := Open("")
	require.NoError(t, err)
	defer h.Close()

	assert.Equal(t, FormatEmbedded, h.Format)
	assert.Nil(t, h.Writer)
	entries, err := h.Source.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.db"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCreate_Embedded(t *testing.T) {
	_, err := Create("")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateThenOpen(t *testing.T) {
	for _, name := range []string{"catalog.toml", "catalog.db"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			embedded, err := Open("")
			require.NoError(t, err)
			entries, err := embedded.Source.Load(ctx)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), name)
			out, err := Create(path)
			require.NoError(t, err)
			require.NoError(t, out.Writer.Write(ctx, entries))
			require.NoError(t, out.Close())

			in, err := Open(path)
			require.NoError(t, err)
			defer in.Close()
			got, err := in.Source.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, entries, got)
		})
	}
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	entries := []domain.Professional{
		{ID: 7, Name: "Kavya Iyer", Category: domain.CategoryEducation, Subcategory: "Music Teacher",
			Location: domain.LocationChennai, Price: 600, PriceUnit: "hour", Rating: 4.5, Reviews: 12},
	}
	path := filepath.Join(t.TempDir(), "export.sqlite")

	require.NoError(t, Export(ctx, path, entries))

	in, err := Open(path)
	require.NoError(t, err)
	defer in.Close()
	got, err := in.Source.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestExport_Unsupported(t *testing.T) {
	err := Export(context.Background(), filepath.Join(t.TempDir(), "out.csv"), nil)

	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}
