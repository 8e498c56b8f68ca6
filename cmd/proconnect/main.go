// Command proconnect finds and hires service professionals from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/custodia-labs/proconnect-cli/internal/adapters/driven/catalog"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driven/config/env"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driven/timer"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driven"
	"github.com/custodia-labs/proconnect-cli/internal/core/services"
	"github.com/custodia-labs/proconnect-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var store driven.SettingsStore
	store, err := file.NewSettingsStore("")
	if err != nil {
		logger.Warn("settings file unavailable, using defaults: %v", err)
		store = memory.NewSettingsStore()
	}
	settingsService := services.NewSettingsService(store, env.NewOverlay())

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	logger.SetLevel(settings.LogLevel)

	cli.SetVersion(version)
	svc := &cli.Services{
		Settings:        settingsService,
		NotificationTTL: settings.NotificationTTL,
		Export:          catalog.Export,
	}

	// A broken catalog still leaves the settings commands usable so it can be fixed.
	catalogService, err := loadCatalog(ctx, settings.CatalogPath)
	if err != nil {
		logger.Warn("catalog unavailable: %v", err)
	} else {
		svc.Catalog = catalogService
		svc.Marketplace = services.NewMarketplace(
			services.NewSessionService(),
			catalogService,
			services.NewNotificationService(timer.NewScheduler(), settings.NotificationTTL),
		)
		defer svc.Marketplace.Close()
	}

	cli.SetServices(svc)
	return cli.Execute(ctx)
}

func loadCatalog(ctx context.Context, path string) (*services.CatalogService, error) {
	h, err := catalog.Open(path)
	if err != nil {
		return nil, err
	}
	defer h.Close()

	c, err := services.LoadCatalog(ctx, h.Source)
	if err != nil {
		return nil, err
	}
	return services.NewCatalogService(c), nil
}
