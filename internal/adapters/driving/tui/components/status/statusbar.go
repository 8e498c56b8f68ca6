// Package status provides the notification bar for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

// Bar shows the current notification on the left and key hints on the right.
type Bar struct {
	styles       *styles.Styles
	notification *domain.Notification
	hints        []key.Binding
	width        int
}

// NewBar creates a new notification bar.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Bar{
		styles: s,
		width:  80,
	}
}

// View renders the bar.
func (b *Bar) View() string {
	left := b.renderNotification()
	right := b.renderHints()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (b *Bar) renderNotification() string {
	if b.notification == nil {
		return ""
	}
	return b.styles.Notice(b.notification.Kind).Render(b.notification.Message)
}

func (b *Bar) renderHints() string {
	hints := make([]string, 0, len(b.hints))
	for _, h := range b.hints {
		help := h.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", help.Key, help.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetNotification sets the notification to display; nil clears it.
func (b *Bar) SetNotification(n *domain.Notification) {
	b.notification = n
}

// Notification returns the displayed notification.
func (b *Bar) Notification() *domain.Notification {
	return b.notification
}

// SetHints sets the key hints.
func (b *Bar) SetHints(hints []key.Binding) {
	b.hints = hints
}

// SetWidth sets the bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}
