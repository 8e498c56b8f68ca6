package mcp

import (
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Marketplace is the session, catalog and notification boundary.
	Marketplace driving.Marketplace

	// Catalog exposes the full catalog for the catalog resource.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Marketplace == nil {
		return ErrMissingMarketplace
	}
	// Catalog is optional; without it the catalog resource is empty.
	return nil
}
