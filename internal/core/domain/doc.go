// Package domain defines the core business entities for ProConnect.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Professional: A catalog entry for a service professional
//   - Catalog: The immutable, ordered collection of professionals
//   - FilterCriteria: The user's current search constraints
//   - Session: The authenticated identity and chosen role
//   - Notification: A transient, self-expiring user-facing message
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
