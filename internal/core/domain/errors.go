package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidation indicates a login attempt with missing or invalid fields.
	// Its message is the one shown to the user.
	ErrValidation = errors.New("please fill in all fields")

	// ErrNoSession indicates catalog access without an authenticated session.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidCatalog indicates a catalog record violates the catalog invariants.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrUnsupportedType indicates an unknown catalog source format.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrRateLimited indicates too many requests in a short window.
	ErrRateLimited = errors.New("rate limited")
)
