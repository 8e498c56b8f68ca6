package memory

import (
	"context"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driven"
)

// Ensure CatalogSource implements the interface.
var _ driven.CatalogSource = (*CatalogSource)(nil)

// CatalogSource serves a fixed slice of professionals.
type CatalogSource struct {
	entries []domain.Professional
	err     error
}

// NewCatalogSource creates a source returning a copy of entries on every load.
func NewCatalogSource(entries []domain.Professional) *CatalogSource {
	out := make([]domain.Professional, len(entries))
	copy(out, entries)
	return &CatalogSource{entries: out}
}

// NewFailingCatalogSource creates a source whose Load always fails with err.
func NewFailingCatalogSource(err error) *CatalogSource {
	return &CatalogSource{err: err}
}

// Load returns the entries.
func (s *CatalogSource) Load(ctx context.Context) ([]domain.Professional, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Professional, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Name identifies the source.
func (s *CatalogSource) Name() string {
	return "memory"
}
