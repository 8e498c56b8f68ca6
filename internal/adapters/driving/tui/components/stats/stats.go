// Package stats renders the dashboard statistics cards.
package stats

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

// Cards shows the professional count, category count and average rating.
type Cards struct {
	styles *styles.Styles
	stats  domain.Statistics
}

// NewCards creates the statistics cards.
func NewCards(s *styles.Styles) *Cards {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Cards{styles: s}
}

// SetStatistics replaces the displayed figures.
func (c *Cards) SetStatistics(stats domain.Statistics) {
	c.stats = stats
}

// Statistics returns the displayed figures.
func (c *Cards) Statistics() domain.Statistics {
	return c.stats
}

// View renders the three cards side by side.
func (c *Cards) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		c.card(fmt.Sprintf("%d", c.stats.Count), "Professionals"),
		" ",
		c.card(fmt.Sprintf("%d", c.stats.CategoryCount), "Categories"),
		" ",
		c.card(fmt.Sprintf("%.1f", c.stats.AverageRating), "Average Rating"),
	)
}

func (c *Cards) card(value, label string) string {
	return c.styles.Card.Render(
		lipgloss.JoinVertical(lipgloss.Center,
			c.styles.Title.Render(value),
			c.styles.Muted.Render(label),
		),
	)
}
