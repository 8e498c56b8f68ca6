package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/views/dashboard"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/views/login"
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driving"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// marketplace is the only core port the TUI talks to.
	marketplace driving.Marketplace

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	loginView     *login.View
	dashboardView *dashboard.View
	statusBar     *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// shownID is the ID of the notification whose expiry has been scheduled.
	shownID string

	// ttl is how long a notification stays on screen.
	ttl time.Duration

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// Option configures an App.
type Option func(*App)

// WithNotificationTTL sets how long notifications stay on screen.
func WithNotificationTTL(ttl time.Duration) Option {
	return func(a *App) {
		if ttl > 0 {
			a.ttl = ttl
		}
	}
}

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, opts ...Option) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		marketplace:   ports.Marketplace,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		loginView:     login.NewView(s, km, ports.Marketplace),
		dashboardView: dashboard.NewView(s, km, ports.Marketplace),
		statusBar:     status.NewBar(s),
		currentView:   messages.ViewLogin,
		ttl:           domain.NotificationTTL,
	}
	for _, opt := range opts {
		opt(a)
	}

	// A session opened elsewhere (for example by a CLI flag) skips the form.
	if ports.Marketplace.Session() != nil {
		a.currentView = messages.ViewDashboard
	}
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("ProConnect"),
	}
	if a.currentView == messages.ViewDashboard {
		cmds = append(cmds, a.dashboardView.Init())
	} else {
		cmds = append(cmds, a.loginView.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	if expire := a.syncNotification(); expire != nil {
		return a, tea.Batch(cmd, expire)
	}
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return tea.Quit
		}

	case messages.LoggedIn:
		a.currentView = messages.ViewDashboard
		a.err = nil
		return a.dashboardView.Init()

	case messages.LoggedOut:
		a.currentView = messages.ViewLogin
		a.loginView.Reset()
		return nil

	case messages.NotificationExpired:
		a.marketplace.ExpireNotification(msg.ID)
		return nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return nil

	case messages.Quit:
		return tea.Quit
	}

	switch a.currentView {
	case messages.ViewLogin:
		a.loginView, cmd = a.loginView.Update(msg)
	case messages.ViewDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		a.err = a.dashboardView.Err()
	}
	return cmd
}

// syncNotification mirrors the marketplace notification into the status bar
// and schedules a tick for any notification not seen before.
func (a *App) syncNotification() tea.Cmd {
	n := a.marketplace.Notification()
	a.statusBar.SetNotification(n)
	if n == nil || n.ID == a.shownID {
		return nil
	}
	a.shownID = n.ID
	return messages.ExpireAfter(n.ID, a.ttl)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewDashboard:
		body = a.dashboardView.View()
		if a.dashboardView.Focus() == dashboard.FocusResults {
			a.statusBar.SetHints(a.keymap.ResultsHelp())
		} else {
			a.statusBar.SetHints(a.keymap.SearchHelp())
		}
	default:
		body = a.loginView.View()
		a.statusBar.SetHints(a.keymap.LoginHelp())
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, "", a.statusBar.View())
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	a.marketplace.Close()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Notification returns the notification shown in the status bar.
func (a *App) Notification() *domain.Notification {
	return a.statusBar.Notification()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// The status bar takes the last two rows.
	a.loginView.SetDimensions(width, height-2)
	a.dashboardView.SetDimensions(width, height-2)
	a.statusBar.SetWidth(width)
}
