// Package cli provides the cobra command tree for the proconnect binary.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driving"
	"github.com/custodia-labs/proconnect-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// ExportFunc writes catalog entries to the file at path.
type ExportFunc func(ctx context.Context, path string, entries []domain.Professional) error

// Services holds the core services the commands drive.
type Services struct {
	Marketplace     driving.Marketplace
	Catalog         driving.CatalogService
	Settings        driving.SettingsService
	NotificationTTL time.Duration
	Export          ExportFunc
}

var (
	marketplace     driving.Marketplace
	catalogService  driving.CatalogService
	settingsService driving.SettingsService
	notificationTTL = domain.NotificationTTL
	exportCatalog   ExportFunc
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "proconnect",
	Short: "Find and hire trusted professionals",
	Long: `ProConnect is a directory of service professionals.

Log in with a name, email and role, then search the catalog by text,
category, city and price, and hire the professional you need.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetServices wires the core services into the command tree.
func SetServices(s *Services) {
	marketplace = s.Marketplace
	catalogService = s.Catalog
	settingsService = s.Settings
	exportCatalog = s.Export
	if s.NotificationTTL > 0 {
		notificationTTL = s.NotificationTTL
	}
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
