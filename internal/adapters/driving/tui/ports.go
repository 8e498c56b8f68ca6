// Package tui provides an interactive terminal user interface for ProConnect.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Marketplace is the session, catalog and notification boundary.
	Marketplace driving.Marketplace
}

// NewPorts creates a new Ports aggregate.
func NewPorts(marketplace driving.Marketplace) *Ports {
	return &Ports{Marketplace: marketplace}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Marketplace == nil {
		return ErrMissingMarketplace
	}
	return nil
}
