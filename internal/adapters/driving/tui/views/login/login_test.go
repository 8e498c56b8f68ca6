package login

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/proconnect-cli/internal/adapters/driven/timer"
	"github.com/custodia-labs/proconnect-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/services"
)

func newMarketplace(t *testing.T) *services.Marketplace {
	t.Helper()
	catalog, err := domain.NewCatalog([]domain.Professional{
		{ID: 1, Name: "Raj Kumar", Category: domain.CategoryHomeServices, Subcategory: "Plumber",
			Location: domain.LocationMumbai, Price: 400, PriceUnit: "hour", Rating: 4.8, Reviews: 127},
	})
	require.NoError(t, err)
	m := services.NewMarketplace(
		services.NewSessionService(),
		services.NewCatalogService(catalog),
		services.NewNotificationService(timer.NewManualScheduler(), domain.NotificationTTL),
	)
	t.Cleanup(m.Close)
	return m
}

func typeText(v *View, text string) {
	for _, r := range text {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(v *View, k tea.KeyType) tea.Cmd {
	_, cmd := v.Update(tea.KeyMsg{Type: k})
	return cmd
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, newMarketplace(t))

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.keymap)
	assert.Equal(t, focusName, v.Focus())
	assert.Equal(t, domain.Role(""), v.Role())
}

func TestView_TypingFillsFocusedField(t *testing.T) {
	v := NewView(nil, nil, newMarketplace(t))

	typeText(v, "Asha")
	press(v, tea.KeyTab)
	typeText(v, "asha@example.com")

	assert.Equal(t, "Asha", v.Name())
	assert.Equal(t, "asha@example.com", v.Email())
}

func TestView_FocusCycles(t *testing.T) {
	v := NewView(nil, nil, newMarketplace(t))

	press(v, tea.KeyTab)
	assert.Equal(t, focusEmail, v.Focus())
	press(v, tea.KeyTab)
	assert.Equal(t, focusRole, v.Focus())
	press(v, tea.KeyTab)
	assert.Equal(t, focusName, v.Focus())
	press(v, tea.KeyShiftTab)
	assert.Equal(t, focusRole, v.Focus())
}

func TestView_RoleCyclesThroughNone(t *testing.T) {
	v := NewView(nil, nil, newMarketplace(t))
	press(v, tea.KeyShiftTab)
	require.Equal(t, focusRole, v.Focus())

	roles := domain.Roles()
	for _, want := range roles {
		press(v, tea.KeyRight)
		assert.Equal(t, want, v.Role())
	}
	press(v, tea.KeyRight)
	assert.Equal(t, domain.Role(""), v.Role())

	press(v, tea.KeyLeft)
	assert.Equal(t, roles[len(roles)-1], v.Role())
}

func TestView_RoleKeysIgnoredOutsideRoleField(t *testing.T) {
	v := NewView(nil, nil, newMarketplace(t))

	press(v, tea.KeyRight)

	assert.Equal(t, domain.Role(""), v.Role())
}

func TestView_SubmitSuccess(t *testing.T) {
	m := newMarketplace(t)
	v := NewView(nil, nil, m)

	typeText(v, "Asha")
	press(v, tea.KeyTab)
	typeText(v, "asha@example.com")
	press(v, tea.KeyTab)
	press(v, tea.KeyRight)

	cmd := press(v, tea.KeyEnter)
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.LoggedIn)
	require.True(t, ok)
	assert.Equal(t, "Asha", msg.Session.Name)
	assert.Equal(t, domain.RoleUser, msg.Session.Role)

	require.NotNil(t, m.Session())
	assert.Empty(t, v.Name())
	assert.Empty(t, v.Email())
	assert.Equal(t, domain.Role(""), v.Role())
	assert.Equal(t, focusName, v.Focus())
}

func TestView_SubmitMissingFields(t *testing.T) {
	m := newMarketplace(t)
	v := NewView(nil, nil, m)

	typeText(v, "Asha")
	cmd := press(v, tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.Nil(t, m.Session())
	assert.Equal(t, "Asha", v.Name())

	n := m.Notification()
	require.NotNil(t, n)
	assert.Equal(t, domain.NotificationError, n.Kind)
	assert.Equal(t, "Please fill in all fields", n.Message)
}

func TestView_View(t *testing.T) {
	v := NewView(nil, nil, newMarketplace(t))
	v.SetDimensions(100, 30)

	out := v.View()

	assert.Contains(t, out, "ProConnect")
	assert.Contains(t, out, "Full Name")
	assert.Contains(t, out, "Email Address")
	assert.Contains(t, out, domain.Role("").Label())
}

func TestView_NonKeyMessage(t *testing.T) {
	v := NewView(nil, nil, newMarketplace(t))

	_, _ = v.Update(errors.New("ignored"))

	assert.Empty(t, v.Name())
}
