package domain

// Role is the display role chosen at login.
// Roles carry no capabilities; they only change labels.
type Role string

// Available roles.
const (
	RoleUser         Role = "user"
	RoleProfessional Role = "professional"
	RoleAdmin        Role = "admin"
	RoleSupport      Role = "support"
)

// Roles returns every role in the order offered at login.
func Roles() []Role {
	return []Role{RoleUser, RoleProfessional, RoleAdmin, RoleSupport}
}

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleProfessional, RoleAdmin, RoleSupport:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// Label returns the role as offered in the login form.
func (r Role) Label() string {
	switch r {
	case RoleUser:
		return "User (Client)"
	case RoleProfessional:
		return "Professional"
	case RoleAdmin:
		return "Admin"
	case RoleSupport:
		return "Customer Support"
	default:
		return "Choose your role"
	}
}

// Title returns the suffix shown next to the product name in the header.
// Only admin and support sessions get one.
func (r Role) Title() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleSupport:
		return "Support"
	default:
		return ""
	}
}

// Session is the currently authenticated identity.
type Session struct {
	// Name is the trimmed, non-empty display name.
	Name string

	// Email is the trimmed, non-empty email. Its format is not checked.
	Email string

	// Role is the role picked at login.
	Role Role
}
