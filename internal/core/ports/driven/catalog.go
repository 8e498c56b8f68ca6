package driven

import (
	"context"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

// CatalogSource supplies the professional catalog.
// The core reads it once at startup and never writes back.
type CatalogSource interface {
	// Load returns every professional in catalog order.
	Load(ctx context.Context) ([]domain.Professional, error)

	// Name describes where the catalog comes from, for logs and diagnostics.
	Name() string
}

// CatalogWriter stores a catalog in a format a CatalogSource can read back.
type CatalogWriter interface {
	// Write replaces the stored catalog with entries.
	Write(ctx context.Context, entries []domain.Professional) error
}
