package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for ProConnect resources.
	uriScheme = "proconnect://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "catalog",
		Name:        "catalog",
		Description: "Every professional in the catalog; requires a session",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "categories",
		Name:        "categories",
		Description: "Service categories accepted by search_professionals",
		MIMEType:    "application/json",
	}, s.handleCategoriesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "locations",
		Name:        "locations",
		Description: "Cities accepted by search_professionals",
		MIMEType:    "application/json",
	}, s.handleLocationsResource)
}

// handleCatalogResource returns the full catalog to an authenticated caller.
func (s *Server) handleCatalogResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Marketplace.Session() == nil {
		return nil, domain.ErrNoSession
	}
	if s.ports.Catalog == nil {
		return jsonResource(req.Params.URI, []ProfessionalOutput{})
	}

	entries := s.ports.Catalog.Catalog().All()
	out := make([]ProfessionalOutput, len(entries))
	for i, p := range entries {
		out[i] = toProfessionalOutput(p)
	}
	return jsonResource(req.Params.URI, out)
}

func (s *Server) handleCategoriesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, domain.Categories())
}

func (s *Server) handleLocationsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, domain.Locations())
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
