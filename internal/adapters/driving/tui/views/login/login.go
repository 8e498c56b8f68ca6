// Package login provides the login form view for the TUI.
package login

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driving"
)

// Focusable elements of the form.
const (
	focusName = iota
	focusEmail
	focusRole
	focusCount
)

// View is the login form.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	marketplace driving.Marketplace

	name  *input.Field
	email *input.Field
	roles []domain.Role
	role  int // index into roles; -1 means none chosen
	focus int

	width  int
	height int
}

// NewView creates a new login view.
func NewView(s *styles.Styles, km *keymap.KeyMap, marketplace driving.Marketplace) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:      s,
		keymap:      km,
		marketplace: marketplace,
		name:        input.NewField(s, "Full Name", "Enter your name"),
		email:       input.NewField(s, "Email Address", "Enter your email"),
		roles:       domain.Roles(),
		role:        -1,
		width:       80,
		height:      24,
	}
	v.name.Focus()
	return v
}

// Init initialises the login view.
func (v *View) Init() tea.Cmd {
	return v.name.Init()
}

// Update handles messages for the login view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, v.updateFocused(msg)
	}

	k := keyMsg.String()
	switch {
	case keymap.Matches(k, v.keymap.Submit):
		return v, v.submit()
	case keymap.Matches(k, v.keymap.NextField):
		return v, v.setFocus((v.focus + 1) % focusCount)
	case keymap.Matches(k, v.keymap.PrevField):
		return v, v.setFocus((v.focus + focusCount - 1) % focusCount)
	case v.focus == focusRole && keymap.Matches(k, v.keymap.RoleNext):
		v.cycleRole(1)
		return v, nil
	case v.focus == focusRole && keymap.Matches(k, v.keymap.RolePrev):
		v.cycleRole(-1)
		return v, nil
	}

	return v, v.updateFocused(msg)
}

func (v *View) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch v.focus {
	case focusName:
		v.name, cmd = v.name.Update(msg)
	case focusEmail:
		v.email, cmd = v.email.Update(msg)
	}
	return cmd
}

// submit attempts the login. On failure the form keeps its contents and
// the marketplace raises the error notification.
func (v *View) submit() tea.Cmd {
	session, err := v.marketplace.Login(v.name.Value(), v.email.Value(), v.Role())
	if err != nil {
		return nil
	}
	v.Reset()
	return func() tea.Msg {
		return messages.LoggedIn{Session: *session}
	}
}

func (v *View) setFocus(focus int) tea.Cmd {
	v.focus = focus
	v.name.Blur()
	v.email.Blur()
	switch focus {
	case focusName:
		return v.name.Focus()
	case focusEmail:
		return v.email.Focus()
	}
	return nil
}

// cycleRole moves through the roles, passing through "none chosen".
func (v *View) cycleRole(step int) {
	n := len(v.roles) + 1
	v.role = ((v.role+1+step)%n+n)%n - 1
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("ProConnect"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Find and hire trusted professionals"))
	b.WriteString("\n\n")
	b.WriteString(v.name.View())
	b.WriteString("\n")
	b.WriteString(v.email.View())
	b.WriteString("\n")
	b.WriteString(v.renderRole())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[tab] next field  [←/→] role  [enter] login  [ctrl+c] quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (v *View) renderRole() string {
	label := v.styles.Muted.Render("Role")
	if v.focus == focusRole {
		label = v.styles.Title.Render("Role")
	}
	value := v.Role().Label()
	if v.focus == focusRole {
		value = "< " + value + " >"
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, v.styles.InputField.Render(value))
}

// Reset clears the form.
func (v *View) Reset() {
	v.name.Reset()
	v.email.Reset()
	v.role = -1
	v.setFocus(focusName)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.name.SetWidth(width / 2)
	v.email.SetWidth(width / 2)
}

// Role returns the chosen role, or "" when none is chosen.
func (v *View) Role() domain.Role {
	if v.role < 0 {
		return ""
	}
	return v.roles[v.role]
}

// Name returns the typed name.
func (v *View) Name() string {
	return v.name.Value()
}

// Email returns the typed email.
func (v *View) Email() string {
	return v.email.Value()
}

// Focus returns the index of the focused element.
func (v *View) Focus() int {
	return v.focus
}
