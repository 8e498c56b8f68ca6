package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleCatalogResource(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a session", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, err := server.handleCatalogResource(ctx, makeReadResourceRequest("proconnect://catalog"))

		assert.ErrorIs(t, err, domain.ErrNoSession)
	})

	t.Run("returns the full catalog regardless of filters", func(t *testing.T) {
		server, m := loggedInServer(t)
		require.NoError(t, m.SetQuery("raj"))

		result, err := server.handleCatalogResource(ctx, makeReadResourceRequest("proconnect://catalog"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "proconnect://catalog", result.Contents[0].URI)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var entries []ProfessionalOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &entries))
		assert.Len(t, entries, 3)
		assert.Equal(t, "Raj Kumar", entries[0].Name)
	})

	t.Run("no catalog port returns empty list", func(t *testing.T) {
		m, _ := testServices(t)
		server, err := NewServer(&Ports{Marketplace: m})
		require.NoError(t, err)
		_, err = m.Login("Asha", "asha@example.com", domain.RoleUser)
		require.NoError(t, err)

		result, err := server.handleCatalogResource(ctx, makeReadResourceRequest("proconnect://catalog"))

		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})
}

func TestServer_handleCategoriesResource(t *testing.T) {
	server, _ := newTestServer(t)

	result, err := server.handleCategoriesResource(context.Background(),
		makeReadResourceRequest("proconnect://categories"))

	require.NoError(t, err)
	var categories []string
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &categories))
	assert.Len(t, categories, 5)
	assert.Contains(t, categories, "Health & Wellness")
}

func TestServer_handleLocationsResource(t *testing.T) {
	server, _ := newTestServer(t)

	result, err := server.handleLocationsResource(context.Background(),
		makeReadResourceRequest("proconnect://locations"))

	require.NoError(t, err)
	var locations []string
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &locations))
	assert.Len(t, locations, 8)
	assert.Equal(t, "Mumbai", locations[0])
}
