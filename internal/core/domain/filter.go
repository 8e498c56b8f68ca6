package domain

import "strings"

// FilterCriteria holds the user's current search constraints.
// The zero value matches every professional.
type FilterCriteria struct {
	// Query is free text matched against name, category, subcategory and location.
	Query string

	// Category restricts results to one category; empty means any.
	Category Category

	// Location restricts results to one city; empty means any.
	Location Location

	// PriceRange restricts results to a price bracket; empty means any.
	PriceRange PriceRange
}

// IsDefault reports whether every field is at its default.
func (f FilterCriteria) IsDefault() bool {
	return f == FilterCriteria{}
}

// Matches reports whether p satisfies every active constraint.
func (f FilterCriteria) Matches(p Professional) bool {
	return f.matchesText(p) &&
		(f.Category == "" || p.Category == f.Category) &&
		(f.Location == "" || p.Location == f.Location) &&
		f.PriceRange.Matches(p.Price)
}

// matchesText checks the lowercase query against the searchable fields.
func (f FilterCriteria) matchesText(p Professional) bool {
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(string(p.Category)), q) ||
		strings.Contains(strings.ToLower(p.Subcategory), q) ||
		strings.Contains(strings.ToLower(string(p.Location)), q)
}
