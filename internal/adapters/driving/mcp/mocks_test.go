package mcp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/proconnect-cli/internal/adapters/driven/timer"
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/services"
)

// testServices builds real services over a small catalog.
func testServices(t *testing.T) (*services.Marketplace, *services.CatalogService) {
	t.Helper()
	catalog, err := domain.NewCatalog([]domain.Professional{
		{ID: 1, Name: "Raj Kumar", Category: domain.CategoryHomeServices, Subcategory: "Plumber",
			Location: domain.LocationMumbai, Price: 400, PriceUnit: "hour", Rating: 4.8, Reviews: 127},
		{ID: 2, Name: "Priya Sharma", Category: domain.CategoryDesignCreative, Subcategory: "UI/UX Designer",
			Location: domain.LocationBangalore, Price: 1500, PriceUnit: "hour", Rating: 4.9, Reviews: 89},
		{ID: 3, Name: "Amit Patel", Category: domain.CategoryTechnology, Subcategory: "Web Developer",
			Location: domain.LocationDelhi, Price: 2000, PriceUnit: "hour", Rating: 4.7, Reviews: 156},
	})
	require.NoError(t, err)

	catalogService := services.NewCatalogService(catalog)
	m := services.NewMarketplace(
		services.NewSessionService(),
		catalogService,
		services.NewNotificationService(timer.NewManualScheduler(), domain.NotificationTTL),
	)
	t.Cleanup(m.Close)
	return m, catalogService
}

func newTestServer(t *testing.T, opts ...Option) (*Server, *services.Marketplace) {
	t.Helper()
	m, c := testServices(t)
	server, err := NewServer(&Ports{Marketplace: m, Catalog: c}, opts...)
	require.NoError(t, err)
	return server, m
}

func loggedInServer(t *testing.T, opts ...Option) (*Server, *services.Marketplace) {
	t.Helper()
	server, m := newTestServer(t, opts...)
	_, err := m.Login("Asha", "asha@example.com", domain.RoleUser)
	require.NoError(t, err)
	return server, m
}
