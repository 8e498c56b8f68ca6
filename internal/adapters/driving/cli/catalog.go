package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and export the professional catalog",
	Long: `Commands for maintaining the catalog file.

These commands read the loaded catalog directly and do not need a session.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every professional in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the service categories",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, c := range domain.Categories() {
			cmd.Println(c)
		}
	},
}

var catalogLocationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List the cities",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, l := range domain.Locations() {
			cmd.Println(l)
		}
	},
}

var catalogPricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "List the price brackets accepted by --price",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, r := range domain.PriceRanges() {
			if r == domain.PriceAny {
				continue
			}
			cmd.Printf("%-10s %s\n", r, r.Label())
		}
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the catalog to a TOML or SQLite file",
	Long: `Write the loaded catalog to a file. The format follows the extension:
.toml for TOML, .db, .sqlite or .sqlite3 for SQLite.

The exported file can be used as catalog_path.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogExport,
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogCategoriesCmd)
	catalogCmd.AddCommand(catalogLocationsCmd)
	catalogCmd.AddCommand(catalogPricesCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	entries := catalogService.Catalog().All()
	if len(entries) == 0 {
		cmd.Println("The catalog is empty.")
		return nil
	}

	cmd.Printf("%d professionals\n\n", len(entries))
	for _, p := range entries {
		printProfessional(cmd, p)
	}
	return nil
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}
	if exportCatalog == nil {
		return errors.New("catalog export not configured")
	}

	entries := catalogService.Catalog().All()
	if err := exportCatalog(cmd.Context(), args[0], entries); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	cmd.Printf("Exported %d professionals to %s\n", len(entries), args[0])
	return nil
}
