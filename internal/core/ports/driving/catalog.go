package driving

import (
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

// CatalogService holds the immutable catalog and the filter criteria,
// and derives the filtered view on every read.
type CatalogService interface {
	SetQuery(query string)
	SetCategory(category domain.Category)
	SetLocation(location domain.Location)
	SetPriceRange(priceRange domain.PriceRange)

	// Filters returns the current filter criteria.
	Filters() domain.FilterCriteria

	// ResetFilters restores every filter to its default.
	ResetFilters()

	// Evaluate returns the matching professionals in catalog order.
	Evaluate() []domain.Professional

	// Statistics summarises Evaluate.
	Statistics() domain.Statistics

	// Lookup finds a professional in the full, unfiltered catalog.
	Lookup(id int) (domain.Professional, error)

	// Catalog returns the underlying catalog.
	Catalog() *domain.Catalog
}
