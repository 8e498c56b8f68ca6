package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driven"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driving"
	"github.com/custodia-labs/proconnect-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService is the catalog search engine.
// The catalog never changes after construction; only the filters do.
// Results are recomputed on every call.
type CatalogService struct {
	catalog *domain.Catalog

	mu      sync.RWMutex
	filters domain.FilterCriteria
}

// NewCatalogService creates a search engine over catalog with default filters.
func NewCatalogService(catalog *domain.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// LoadCatalog reads every professional from src and builds an immutable catalog.
func LoadCatalog(ctx context.Context, src driven.CatalogSource) (*domain.Catalog, error) {
	logger.Section("Catalog")
	logger.Debug("loading catalog from %s", src.Name())

	entries, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", src.Name(), err)
	}

	catalog, err := domain.NewCatalog(entries)
	if err != nil {
		return nil, fmt.Errorf("catalog from %s: %w", src.Name(), err)
	}

	logger.Debug("loaded %d professionals", catalog.Len())
	return catalog, nil
}

// SetQuery sets the free-text query.
func (s *CatalogService) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Query = query
}

// SetCategory sets the category filter.
func (s *CatalogService) SetCategory(category domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Category = category
}

// SetLocation sets the location filter.
func (s *CatalogService) SetLocation(location domain.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Location = location
}

// SetPriceRange sets the price bracket.
func (s *CatalogService) SetPriceRange(priceRange domain.PriceRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.PriceRange = priceRange
}

// Filters returns the current filter criteria.
func (s *CatalogService) Filters() domain.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// ResetFilters restores every filter to its default.
func (s *CatalogService) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = domain.FilterCriteria{}
}

// Evaluate returns the professionals matching every filter, in catalog order.
func (s *CatalogService) Evaluate() []domain.Professional {
	filters := s.Filters()
	if filters.IsDefault() {
		return s.catalog.All()
	}
	return s.catalog.Filter(filters.Matches)
}

// Statistics summarises the current evaluation.
func (s *CatalogService) Statistics() domain.Statistics {
	return domain.NewStatistics(len(s.Evaluate()))
}

// Lookup finds a professional in the full catalog, ignoring filters.
func (s *CatalogService) Lookup(id int) (domain.Professional, error) {
	p, ok := s.catalog.Find(id)
	if !ok {
		return domain.Professional{}, fmt.Errorf("professional %d: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

// Catalog returns the underlying catalog.
func (s *CatalogService) Catalog() *domain.Catalog {
	return s.catalog
}
