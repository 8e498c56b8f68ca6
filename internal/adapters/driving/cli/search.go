package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

var (
	searchLogin    loginFlags
	searchCategory string
	searchLocation string
	searchPrice    string
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the professional catalog",
	Long: `Logs in and searches the catalog of professionals.

The query matches name, category, subcategory and city, ignoring case.
Filters narrow the results to one category, one city or a price bracket.

Price brackets: 0-500, 500-1000, 1000-2000, 2000+`,
	Example: `  proconnect search plumber --name Asha --email asha@example.com
  proconnect search --name Asha --email asha@example.com --category Technology --price 1000-2000`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchLogin.register(searchCmd)
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "filter by category")
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "filter by city")
	searchCmd.Flags().StringVarP(&searchPrice, "price", "p", "", "filter by price bracket")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	var err error
	if searchJSON {
		_, err = searchLogin.loginQuiet()
	} else {
		_, err = searchLogin.login(cmd)
	}
	if err != nil {
		return err
	}

	category, location := domain.Category(searchCategory), domain.Location(searchLocation)
	if category != "" && !category.IsValid() {
		return fmt.Errorf("category: category %q: %w", category, domain.ErrInvalidInput)
	}
	if location != "" && !location.IsValid() {
		return fmt.Errorf("location: location %q: %w", location, domain.ErrInvalidInput)
	}

	if err := marketplace.SetQuery(strings.Join(args, " ")); err != nil {
		return err
	}
	if err := marketplace.SetCategory(category); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	if err := marketplace.SetLocation(location); err != nil {
		return fmt.Errorf("location: %w", err)
	}
	if err := marketplace.SetPriceRange(domain.PriceRange(searchPrice)); err != nil {
		return fmt.Errorf("price: %w", err)
	}

	results, err := marketplace.Professionals()
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	stats, err := marketplace.Statistics()
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, stats, results)
	}

	notification, err := marketplace.Search()
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	printNotification(cmd, &notification)
	cmd.Println()
	return outputSearchTable(cmd, stats, results)
}

// professionalJSON is the JSON shape of a catalog entry.
type professionalJSON struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Location    string  `json:"location"`
	Price       int     `json:"price"`
	PriceUnit   string  `json:"priceUnit"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Image       string  `json:"image,omitempty"`
}

type searchResultJSON struct {
	Count         int                `json:"count"`
	CategoryCount int                `json:"categoryCount"`
	AverageRating float64            `json:"averageRating"`
	Professionals []professionalJSON `json:"professionals"`
}

func toProfessionalJSON(p domain.Professional) professionalJSON {
	return professionalJSON{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Subcategory: p.Subcategory,
		Location:    string(p.Location),
		Price:       p.Price,
		PriceUnit:   p.PriceUnit,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Image:       p.Image,
	}
}

func outputSearchJSON(cmd *cobra.Command, stats domain.Statistics, results []domain.Professional) error {
	out := searchResultJSON{
		Count:         stats.Count,
		CategoryCount: stats.CategoryCount,
		AverageRating: stats.AverageRating,
		Professionals: make([]professionalJSON, 0, len(results)),
	}
	for _, p := range results {
		out.Professionals = append(out.Professionals, toProfessionalJSON(p))
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, stats domain.Statistics, results []domain.Professional) error {
	cmd.Printf("Professionals: %d  Categories: %d  Average Rating: %.1f\n\n",
		stats.Count, stats.CategoryCount, stats.AverageRating)

	if len(results) == 0 {
		cmd.Println("No professionals found matching your search.")
		return nil
	}

	for _, p := range results {
		printProfessional(cmd, p)
	}
	return nil
}

func printProfessional(cmd *cobra.Command, p domain.Professional) {
	cmd.Printf("  [%d] %s - %s\n", p.ID, p.Name, p.Subcategory)
	cmd.Printf("      %s · %s\n", p.Category, p.Location)
	cmd.Printf("      %s %s  %s\n", p.Stars(), p.RatingLabel(), p.PriceLabel())
	cmd.Println()
}
