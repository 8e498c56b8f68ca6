package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/proconnect-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driven/timer"
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/services"
)

// exportCall records one invocation of the export function.
type exportCall struct {
	path    string
	entries []domain.Professional
}

// testEnv holds the services wired by setupTestServices.
type testEnv struct {
	marketplace *services.Marketplace
	catalog     *services.CatalogService
	settings    *services.SettingsService
	store       *memory.SettingsStore
	exports     []exportCall
	exportErr   error
}

func testProfessionals() []domain.Professional {
	return []domain.Professional{
		{ID: 1, Name: "Raj Kumar", Category: domain.CategoryHomeServices, Subcategory: "Plumber",
			Location: domain.LocationMumbai, Price: 400, PriceUnit: "hour", Rating: 4.8, Reviews: 127},
		{ID: 2, Name: "Priya Sharma", Category: domain.CategoryDesignCreative, Subcategory: "UI/UX Designer",
			Location: domain.LocationBangalore, Price: 1500, PriceUnit: "hour", Rating: 4.9, Reviews: 89},
		{ID: 3, Name: "Amit Patel", Category: domain.CategoryTechnology, Subcategory: "Web Developer",
			Location: domain.LocationDelhi, Price: 2000, PriceUnit: "hour", Rating: 4.7, Reviews: 156},
		{ID: 4, Name: "Vikram Singh", Category: domain.CategoryHealthWellness, Subcategory: "Yoga Instructor",
			Location: domain.LocationMumbai, Price: 2500, PriceUnit: "session", Rating: 4.6, Reviews: 74},
	}
}

// setupTestServices wires real services over a small catalog and returns
// a cleanup function that restores the package state.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	catalog, err := domain.NewCatalog(testProfessionals())
	require.NoError(t, err)

	env := &testEnv{store: memory.NewSettingsStore()}
	env.catalog = services.NewCatalogService(catalog)
	env.marketplace = services.NewMarketplace(
		services.NewSessionService(),
		env.catalog,
		services.NewNotificationService(timer.NewManualScheduler(), domain.NotificationTTL),
	)
	env.settings = services.NewSettingsService(env.store, nil)

	SetServices(&Services{
		Marketplace: env.marketplace,
		Catalog:     env.catalog,
		Settings:    env.settings,
		Export: func(_ context.Context, path string, entries []domain.Professional) error {
			env.exports = append(env.exports, exportCall{path: path, entries: entries})
			return env.exportErr
		},
	})

	t.Cleanup(func() {
		env.marketplace.Close()
		marketplace = nil
		catalogService = nil
		settingsService = nil
		exportCatalog = nil
		notificationTTL = domain.NotificationTTL
		resetFlags()
	})
	return env
}

// resetFlags restores flag variables shared through the global command tree.
func resetFlags() {
	searchLogin = loginFlags{role: string(domain.RoleUser)}
	hireLogin = loginFlags{role: string(domain.RoleUser)}
	searchCategory = ""
	searchLocation = ""
	searchPrice = ""
	searchJSON = false
	verbose = false
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

var loginArgs = []string{"--name", "Asha", "--email", "asha@example.com"}

func withLogin(args ...string) []string {
	return append(args, loginArgs...)
}
