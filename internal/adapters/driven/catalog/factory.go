// Package catalog picks the catalog adapter for a configured location.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/proconnect-cli/internal/adapters/driven/catalog/file"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driven"
)

// Format is a catalog storage format.
type Format string

// Supported catalog formats.
const (
	FormatEmbedded Format = "embedded"
	FormatTOML     Format = "toml"
	FormatSQLite   Format = "sqlite"
)

// DetectFormat infers the format from a path's extension.
// An empty path selects the embedded catalog.
func DetectFormat(path string) (Format, error) {
	if path == "" {
		return FormatEmbedded, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: catalog %q (want .toml, .db or .sqlite)", domain.ErrUnsupportedType, path)
	}
}

// Handle is an opened catalog location.
type Handle struct {
	// Format is the detected storage format.
	Format Format

	// Source reads the catalog.
	Source driven.CatalogSource

	// Writer replaces the catalog. Nil for the embedded catalog.
	Writer driven.CatalogWriter

	closer func() error
}

// Close releases resources held by the handle.
func (h *Handle) Close() error {
	if h.closer == nil {
		return nil
	}
	return h.closer()
}

// Open opens the catalog at path for reading.
// The file must already exist unless path is empty.
func Open(path string) (*Handle, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if format != FormatEmbedded {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
	}
	return open(path, format)
}

// Create opens the catalog at path for writing, creating it if needed.
func Create(path string) (*Handle, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if format == FormatEmbedded {
		return nil, fmt.Errorf("%w: the embedded catalog is read-only", domain.ErrInvalidInput)
	}
	return open(path, format)
}

// Export writes entries to a new or existing catalog at path.
func Export(ctx context.Context, path string, entries []domain.Professional) (err error) {
	h, err := Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, h.Close())
	}()
	return h.Writer.Write(ctx, entries)
}

func open(path string, format Format) (*Handle, error) {
	switch format {
	case FormatEmbedded:
		return &Handle{Format: format, Source: file.NewEmbeddedSource()}, nil
	case FormatTOML:
		return &Handle{Format: format, Source: file.NewSource(path), Writer: file.NewWriter(path)}, nil
	case FormatSQLite:
		store, err := sqlite.NewStore(path)
		if err != nil {
			return nil, err
		}
		return &Handle{
			Format: format,
			Source: store.CatalogSource(),
			Writer: store.CatalogWriter(),
			closer: store.Close,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, format)
	}
}
