package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the catalog location, notification duration and log level.

Settings are read from defaults, then the settings file, then PROCONNECT_*
environment variables. "settings set" writes the settings file only.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save it to the settings file.

Keys:
  catalog_path      path to a .toml or .db catalog; empty uses the built-in catalog
  notification_ttl  how long notifications stay visible, e.g. 3.5s
  log_level         debug, info, warn or error`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

// logLevels are offered by the wizard in this order.
var logLevels = []string{"debug", "info", "warn", "error"}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	catalogPath := settings.CatalogPath
	if catalogPath == "" {
		catalogPath = "(built-in)"
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("  catalog_path:     %s\n", catalogPath)
	cmd.Printf("  notification_ttl: %s\n", settings.NotificationTTL)
	cmd.Printf("  log_level:        %s\n", settings.LogLevel)
	cmd.Println()
	cmd.Printf("Settings file: %s\n", settingsService.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s to %q\n", args[0], args[1])
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("ProConnect Settings Wizard")
	cmd.Println("==========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Step 1: Catalog")
	cmd.Println("---------------")
	cmd.Printf("Path to a .toml or .db catalog, or - for the built-in catalog [%s]: ", current.CatalogPath)
	if path := readLine(reader); path != "" {
		if path == "-" {
			path = ""
		}
		if err := settingsService.Set("catalog_path", path); err != nil {
			return fmt.Errorf("failed to set catalog path: %w", err)
		}
	}
	cmd.Println()

	cmd.Println("Step 2: Notifications")
	cmd.Println("---------------------")
	cmd.Printf("How long notifications stay visible [%s]: ", current.NotificationTTL)
	if ttl := readLine(reader); ttl != "" {
		if err := settingsService.Set("notification_ttl", ttl); err != nil {
			return fmt.Errorf("failed to set notification duration: %w", err)
		}
	}
	cmd.Println()

	cmd.Println("Step 3: Log Level")
	cmd.Println("-----------------")
	defaultLevel := 2
	for i, level := range logLevels {
		cmd.Printf("  %d. %s\n", i+1, level)
		if level == current.LogLevel {
			defaultLevel = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultLevel)
	choice := parseChoice(readLine(reader), len(logLevels), defaultLevel)
	if err := settingsService.Set("log_level", logLevels[choice-1]); err != nil {
		return fmt.Errorf("failed to set log level: %w", err)
	}
	cmd.Println()

	cmd.Println("Settings saved.")
	return nil
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
