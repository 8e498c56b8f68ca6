// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

// EmptyMessage is shown when no professional matches the filters.
const EmptyMessage = "No professionals found matching your search."

// linesPerEntry is how many rows one professional occupies.
const linesPerEntry = 3

// ProfessionalList displays professionals in a navigable list.
type ProfessionalList struct {
	items    []domain.Professional
	selected int
	active   bool
	styles   *styles.Styles
	width    int
	height   int
}

// NewProfessionalList creates a new professional list component.
func NewProfessionalList(s *styles.Styles) *ProfessionalList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ProfessionalList{
		styles: s,
		width:  80,
		height: 12,
	}
}

// Init initialises the list.
func (l *ProfessionalList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *ProfessionalList) Update(msg tea.Msg) (*ProfessionalList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the visible window of the list.
func (l *ProfessionalList) View() string {
	if len(l.items) == 0 {
		return l.styles.Muted.Render(EmptyMessage)
	}

	visible := l.height / linesPerEntry
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.items) {
		end = len(l.items)
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, l.renderEntry(i, l.items[i]))
	}
	return strings.Join(rows, "\n")
}

// renderEntry formats one professional over three lines.
func (l *ProfessionalList) renderEntry(index int, p domain.Professional) string {
	indicator := "  "
	name := l.styles.Normal.Render(p.Name)
	if index == l.selected && l.active {
		indicator = "> "
		name = l.styles.Selected.Render(p.Name)
	}

	title := fmt.Sprintf("%s%s  %s", indicator, name, l.styles.Subtitle.Render(p.Subcategory))
	where := l.styles.Muted.Render(fmt.Sprintf("    %s · %s", p.Category, p.Location))
	rating := fmt.Sprintf("    %s %s  %s",
		l.styles.Stars.Render(p.Stars()),
		l.styles.Muted.Render(p.RatingLabel()),
		l.styles.Title.Render(p.PriceLabel()),
	)
	return title + "\n" + where + "\n" + rating
}

// SetProfessionals replaces the list contents, keeping the selection in range.
func (l *ProfessionalList) SetProfessionals(items []domain.Professional) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = len(items) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Professionals returns the current contents.
func (l *ProfessionalList) Professionals() []domain.Professional {
	return l.items
}

// Selected returns the index of the selected professional.
func (l *ProfessionalList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *ProfessionalList) SetSelected(index int) {
	if index >= 0 && index < len(l.items) {
		l.selected = index
	}
}

// SelectedProfessional returns the selected professional, or nil if the list is empty.
func (l *ProfessionalList) SelectedProfessional() *domain.Professional {
	if len(l.items) == 0 {
		return nil
	}
	p := l.items[l.selected]
	return &p
}

// SetActive toggles the selection highlight.
func (l *ProfessionalList) SetActive(active bool) {
	l.active = active
}

// Active reports whether the list has focus.
func (l *ProfessionalList) Active() bool {
	return l.active
}

// MoveUp moves selection up.
func (l *ProfessionalList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ProfessionalList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *ProfessionalList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of professionals.
func (l *ProfessionalList) Count() int {
	return len(l.items)
}

// IsEmpty returns whether the list is empty.
func (l *ProfessionalList) IsEmpty() bool {
	return len(l.items) == 0
}
