package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui"
)

// ErrNotTerminal is returned when the TUI is started without an interactive terminal.
var ErrNotTerminal = errors.New("the interactive UI needs a terminal; use search or hire instead")

// isTerminal reports whether stdin is an interactive terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// runApp runs the TUI program; replaced in tests.
var runApp = func(app *tui.App) error {
	return app.Run()
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for ProConnect.

Controls:
  Tab / Shift+Tab - Move between fields, or between search and results
  ←/→             - Choose a role on the login form
  Enter           - Log in / Search / Hire the selected professional
  ↑/k, ↓/j        - Navigate results
  c, l, p         - Cycle category, city and price filters
  /               - Back to the search box
  Esc             - Log out
  Ctrl+C          - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if !isTerminal() {
		return ErrNotTerminal
	}

	app, err := tui.NewApp(tui.NewPorts(marketplace), tui.WithNotificationTTL(notificationTTL))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := runApp(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
