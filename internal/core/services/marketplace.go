package services

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driving"
	"github.com/custodia-labs/proconnect-cli/internal/logger"
)

// Ensure Marketplace implements the interface.
var _ driving.Marketplace = (*Marketplace)(nil)

// Marketplace composes the session manager, the catalog search engine and
// the notifier. Catalog data is only reachable with an active session.
type Marketplace struct {
	mu       sync.Mutex
	sessions driving.SessionService
	catalog  driving.CatalogService
	notifier driving.Notifier
}

// NewMarketplace creates the composition root.
func NewMarketplace(
	sessions driving.SessionService,
	catalog driving.CatalogService,
	notifier driving.Notifier,
) *Marketplace {
	return &Marketplace{
		sessions: sessions,
		catalog:  catalog,
		notifier: notifier,
	}
}

// Login opens a session. Filters are left untouched.
func (m *Marketplace) Login(name, email string, role domain.Role) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	logger.Section("Login")

	session, err := m.sessions.Login(name, email, role)
	if err != nil {
		m.notifier.Notify("Please fill in all fields", domain.NotificationError)
		return nil, fmt.Errorf("login: %w", err)
	}

	m.notifier.Notify(
		fmt.Sprintf("Welcome %s! Logged in as %s", session.Name, session.Role),
		domain.NotificationSuccess,
	)
	return session, nil
}

// Logout clears the session and every filter, then says goodbye.
// It does the same when nobody is logged in.
func (m *Marketplace) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	logger.Section("Logout")

	m.sessions.Logout()
	m.catalog.ResetFilters()
	m.notifier.Notify("Logged out successfully", domain.NotificationInfo)
}

// Session returns the active session, or nil.
func (m *Marketplace) Session() *domain.Session {
	return m.sessions.Current()
}

// Filters returns the current filter criteria.
func (m *Marketplace) Filters() domain.FilterCriteria {
	return m.catalog.Filters()
}

// SetQuery sets the free-text query.
func (m *Marketplace) SetQuery(query string) error {
	return m.gated(func() { m.catalog.SetQuery(query) })
}

// SetCategory sets the category filter.
func (m *Marketplace) SetCategory(category domain.Category) error {
	if category != "" && !category.IsValid() {
		return fmt.Errorf("category %q: %w", category, domain.ErrInvalidInput)
	}
	return m.gated(func() { m.catalog.SetCategory(category) })
}

// SetLocation sets the location filter.
func (m *Marketplace) SetLocation(location domain.Location) error {
	if location != "" && !location.IsValid() {
		return fmt.Errorf("location %q: %w", location, domain.ErrInvalidInput)
	}
	return m.gated(func() { m.catalog.SetLocation(location) })
}

// SetPriceRange sets the price bracket. Any string is accepted;
// unparseable brackets are resolved when filtering.
func (m *Marketplace) SetPriceRange(priceRange domain.PriceRange) error {
	return m.gated(func() { m.catalog.SetPriceRange(priceRange) })
}

// Professionals returns the filtered view of the catalog.
func (m *Marketplace) Professionals() ([]domain.Professional, error) {
	var out []domain.Professional
	err := m.gated(func() { out = m.catalog.Evaluate() })
	return out, err
}

// Statistics summarises the filtered view.
func (m *Marketplace) Statistics() (domain.Statistics, error) {
	var stats domain.Statistics
	err := m.gated(func() { stats = m.catalog.Statistics() })
	return stats, err
}

// Search announces how many professionals match the current filters.
func (m *Marketplace) Search() (domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sessions.Current() == nil {
		return domain.Notification{}, domain.ErrNoSession
	}

	count := len(m.catalog.Evaluate())
	return m.notifier.Notify(fmt.Sprintf("Found %d professionals", count), domain.NotificationSuccess), nil
}

// Hire acknowledges a hire request. An unknown id is an error and raises
// no notification.
func (m *Marketplace) Hire(id int) (domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sessions.Current() == nil {
		return domain.Notification{}, domain.ErrNoSession
	}

	p, err := m.catalog.Lookup(id)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("hire: %w", err)
	}

	logger.Debug("hire requested for %d (%s)", p.ID, p.Name)
	return m.notifier.Notify(fmt.Sprintf("Hiring %s", p.Name), domain.NotificationInfo), nil
}

// Notification returns the visible notification, or nil.
func (m *Marketplace) Notification() *domain.Notification {
	return m.notifier.Current()
}

// ExpireNotification clears the notification if it is still the one with id.
func (m *Marketplace) ExpireNotification(id string) bool {
	return m.notifier.Expire(id)
}

// Close cancels the pending notification expiry.
func (m *Marketplace) Close() {
	m.notifier.Close()
}

// gated runs fn only while a session is active.
func (m *Marketplace) gated(fn func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sessions.Current() == nil {
		return domain.ErrNoSession
	}
	fn()
	return nil
}
