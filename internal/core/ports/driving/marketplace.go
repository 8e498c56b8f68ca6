package driving

import (
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

// Marketplace is the presentation boundary of ProConnect.
// It combines the session manager, the catalog search engine and the
// current notification behind one set of controlled entry points.
type Marketplace interface {
	// Login validates the credentials and opens a session.
	// On failure it returns an error wrapping domain.ErrValidation
	// and raises an error notification.
	Login(name, email string, role domain.Role) (*domain.Session, error)

	// Logout closes the session and resets every filter.
	// It always succeeds, even without an active session.
	Logout()

	// Session returns the active session, or nil when anonymous.
	Session() *domain.Session

	// Filters returns the current filter criteria.
	Filters() domain.FilterCriteria

	// SetQuery sets the free-text query.
	SetQuery(query string) error

	// SetCategory sets the category filter; empty clears it.
	SetCategory(category domain.Category) error

	// SetLocation sets the location filter; empty clears it.
	SetLocation(location domain.Location) error

	// SetPriceRange sets the price bracket; empty clears it.
	SetPriceRange(priceRange domain.PriceRange) error

	// Professionals evaluates the filters against the catalog.
	Professionals() ([]domain.Professional, error)

	// Statistics summarises the current evaluation.
	Statistics() (domain.Statistics, error)

	// Search raises a notification announcing the current result count.
	Search() (domain.Notification, error)

	// Hire acknowledges a hire request for the professional with the given id.
	Hire(id int) (domain.Notification, error)

	// Notification returns the visible notification, or nil.
	Notification() *domain.Notification

	// ExpireNotification clears the notification if it is still the one with id.
	ExpireNotification(id string) bool

	// Close cancels any pending notification expiry.
	Close()
}
