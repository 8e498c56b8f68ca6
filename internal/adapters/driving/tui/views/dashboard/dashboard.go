// Package dashboard provides the search dashboard view for the TUI.
package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/components/stats"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driving"
)

// Focus identifies which part of the dashboard receives keys.
type Focus int

const (
	// FocusSearch sends keys to the search box.
	FocusSearch Focus = iota
	// FocusResults sends keys to the professional list.
	FocusResults
)

// View is the logged-in dashboard.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	marketplace driving.Marketplace

	search *input.Field
	list   *list.ProfessionalList
	cards  *stats.Cards
	focus  Focus
	err    error

	width  int
	height int
}

// NewView creates a new dashboard view.
func NewView(s *styles.Styles, km *keymap.KeyMap, marketplace driving.Marketplace) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		marketplace: marketplace,
		search:      input.NewField(s, "Search", "Search by name, service, category or city..."),
		list:        list.NewProfessionalList(s),
		cards:       stats.NewCards(s),
		width:       80,
		height:      24,
	}
}

// Init focuses the search box and loads the current view of the catalog.
func (v *View) Init() tea.Cmd {
	v.search.SetValue(v.marketplace.Filters().Query)
	v.Refresh()
	return v.setFocus(FocusSearch)
}

// Update handles messages for the dashboard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.focus == FocusSearch {
			var cmd tea.Cmd
			v.search, cmd = v.search.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	k := keyMsg.String()
	if keymap.Matches(k, v.keymap.Logout) {
		return v, v.logout()
	}
	if keymap.Matches(k, v.keymap.NextField) {
		if v.focus == FocusSearch {
			return v, v.setFocus(FocusResults)
		}
		return v, v.setFocus(FocusSearch)
	}

	if v.focus == FocusSearch {
		return v, v.updateSearch(keyMsg)
	}
	return v, v.updateResults(keyMsg)
}

func (v *View) updateSearch(msg tea.KeyMsg) tea.Cmd {
	if keymap.Matches(msg.String(), v.keymap.Submit) {
		_, v.err = v.marketplace.Search()
		return nil
	}

	var cmd tea.Cmd
	before := v.search.Value()
	v.search, cmd = v.search.Update(msg)
	if v.search.Value() != before {
		v.err = v.marketplace.SetQuery(v.search.Value())
		v.Refresh()
	}
	return cmd
}

func (v *View) updateResults(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Hire):
		if p := v.list.SelectedProfessional(); p != nil {
			_, v.err = v.marketplace.Hire(p.ID)
		}
	case keymap.Matches(k, v.keymap.Category):
		v.err = v.marketplace.SetCategory(nextCategory(v.marketplace.Filters().Category))
		v.Refresh()
	case keymap.Matches(k, v.keymap.Location):
		v.err = v.marketplace.SetLocation(nextLocation(v.marketplace.Filters().Location))
		v.Refresh()
	case keymap.Matches(k, v.keymap.Price):
		v.err = v.marketplace.SetPriceRange(nextPriceRange(v.marketplace.Filters().PriceRange))
		v.Refresh()
	case keymap.Matches(k, v.keymap.FocusSearch):
		return v.setFocus(FocusSearch)
	default:
		v.list, _ = v.list.Update(msg)
	}
	return nil
}

func (v *View) logout() tea.Cmd {
	v.marketplace.Logout()
	v.search.Reset()
	v.list.SetProfessionals(nil)
	v.err = nil
	return func() tea.Msg { return messages.LoggedOut{} }
}

func (v *View) setFocus(focus Focus) tea.Cmd {
	v.focus = focus
	v.list.SetActive(focus == FocusResults)
	if focus == FocusSearch {
		return v.search.Focus()
	}
	v.search.Blur()
	return nil
}

// Refresh re-reads the filtered professionals and statistics.
func (v *View) Refresh() {
	professionals, err := v.marketplace.Professionals()
	if err != nil {
		v.err = err
		return
	}
	statistics, err := v.marketplace.Statistics()
	if err != nil {
		v.err = err
		return
	}
	v.list.SetProfessionals(professionals)
	v.cards.SetStatistics(statistics)
}

// View renders the dashboard.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(v.search.View())
	b.WriteString("\n")
	b.WriteString(v.renderFilters())
	b.WriteString("\n\n")
	b.WriteString(v.cards.View())
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	if v.err != nil {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Error.Render(v.err.Error()))
	}
	return b.String()
}

func (v *View) renderHeader() string {
	brand := "ProConnect"
	name := ""
	if s := v.marketplace.Session(); s != nil {
		if title := s.Role.Title(); title != "" {
			brand += " " + title
		}
		name = s.Name
	}
	left := v.styles.Header.Render(brand)
	right := v.styles.Normal.Render(fmt.Sprintf("Welcome, %s", name))

	padding := v.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	return left + strings.Repeat(" ", padding) + right
}

func (v *View) renderFilters() string {
	f := v.marketplace.Filters()
	category := "All Categories"
	if f.Category != "" {
		category = f.Category.String()
	}
	location := "All Locations"
	if f.Location != "" {
		location = f.Location.String()
	}
	return v.styles.Muted.Render(fmt.Sprintf("[c] %s   [l] %s   [p] %s",
		category, location, f.PriceRange.Label()))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.search.SetWidth(width)
	// Header, search box, filters and cards take about a dozen rows.
	v.list.SetDimensions(width, height-14)
}

// Focus returns which part has focus.
func (v *View) Focus() Focus {
	return v.focus
}

// Professionals returns the professionals currently listed.
func (v *View) Professionals() []domain.Professional {
	return v.list.Professionals()
}

// Selected returns the selected list index.
func (v *View) Selected() int {
	return v.list.Selected()
}

// Statistics returns the statistics currently shown.
func (v *View) Statistics() domain.Statistics {
	return v.cards.Statistics()
}

// Query returns the text in the search box.
func (v *View) Query() string {
	return v.search.Value()
}

// Err returns the last error from the marketplace.
func (v *View) Err() error {
	return v.err
}

func nextCategory(current domain.Category) domain.Category {
	return cycle(append([]domain.Category{""}, domain.Categories()...), current)
}

func nextLocation(current domain.Location) domain.Location {
	return cycle(append([]domain.Location{""}, domain.Locations()...), current)
}

func nextPriceRange(current domain.PriceRange) domain.PriceRange {
	return cycle(domain.PriceRanges(), current)
}

// cycle returns the element after current, wrapping around.
// An unknown current value restarts at the first element.
func cycle[T comparable](options []T, current T) T {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
