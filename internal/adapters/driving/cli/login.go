package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

// loginFlags are the credentials accepted by commands that need a session.
type loginFlags struct {
	name  string
	email string
	role  string
}

func (f *loginFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "your full name")
	cmd.Flags().StringVar(&f.email, "email", "", "your email address")
	cmd.Flags().StringVar(&f.role, "role", string(domain.RoleUser),
		"your role: user, professional, admin or support")
}

// login opens a marketplace session from the flags and prints the welcome notice.
func (f *loginFlags) login(cmd *cobra.Command) (*domain.Session, error) {
	session, err := f.loginQuiet()
	if err != nil {
		return nil, err
	}
	printNotification(cmd, marketplace.Notification())
	return session, nil
}

// loginQuiet opens a marketplace session without printing anything.
func (f *loginFlags) loginQuiet() (*domain.Session, error) {
	if marketplace == nil {
		return nil, errors.New("marketplace not configured")
	}
	session, err := marketplace.Login(f.name, f.email, domain.Role(f.role))
	if err != nil {
		return nil, fmt.Errorf("%w (use --name, --email and --role)", err)
	}
	return session, nil
}

func printNotification(cmd *cobra.Command, n *domain.Notification) {
	if n == nil {
		return
	}
	cmd.Printf("[%s] %s\n", n.Kind, n.Message)
}
