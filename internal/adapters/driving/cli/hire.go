package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

var hireLogin loginFlags

var hireCmd = &cobra.Command{
	Use:   "hire <id>",
	Short: "Hire a professional",
	Long: `Logs in and sends a hire request for the professional with the given ID.

IDs are shown in search results and by "proconnect catalog list".`,
	Example: `  proconnect hire 3 --name Asha --email asha@example.com`,
	Args:    cobra.ExactArgs(1),
	RunE:    runHire,
}

func init() {
	hireLogin.register(hireCmd)
	rootCmd.AddCommand(hireCmd)
}

func runHire(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: professional id must be a number, got %q", domain.ErrInvalidInput, args[0])
	}

	if _, err := hireLogin.login(cmd); err != nil {
		return err
	}

	notification, err := marketplace.Hire(id)
	if err != nil {
		return err
	}
	printNotification(cmd, &notification)
	return nil
}
