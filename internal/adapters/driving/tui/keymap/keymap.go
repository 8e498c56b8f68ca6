// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Submit sends the login form or runs a search.
	Submit key.Binding

	// NextField moves focus forward.
	NextField key.Binding

	// PrevField moves focus backward.
	PrevField key.Binding

	// RoleNext and RolePrev cycle the role selector.
	RoleNext key.Binding
	RolePrev key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Hire hires the selected professional.
	Hire key.Binding

	// Category, Location and Price cycle their filter presets.
	Category key.Binding
	Location key.Binding
	Price    key.Binding

	// FocusSearch jumps back to the search box.
	FocusSearch key.Binding

	// Logout ends the session.
	Logout key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		RoleNext: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next role"),
		),
		RolePrev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous role"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Hire: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "hire"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category"),
		),
		Location: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "location"),
		),
		Price: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "price"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Logout: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "logout"),
		),
	}
}

// LoginHelp returns keybindings shown on the login form.
func (k *KeyMap) LoginHelp() []key.Binding {
	return []key.Binding{k.NextField, k.RoleNext, k.Submit, k.Quit}
}

// SearchHelp returns keybindings shown while typing a query.
func (k *KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextField, k.Logout, k.Quit}
}

// ResultsHelp returns keybindings shown while browsing results.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Down, k.Hire, k.Category, k.Location, k.Price, k.FocusSearch, k.Logout}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
