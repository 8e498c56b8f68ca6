package domain

import (
	"fmt"
	"math"
	"strings"
)

// Category is a service category from the closed category set.
type Category string

// Available categories.
const (
	CategoryHomeServices   Category = "Home Services"
	CategoryDesignCreative Category = "Design & Creative"
	CategoryTechnology     Category = "Technology"
	CategoryEducation      Category = "Education"
	CategoryHealthWellness Category = "Health & Wellness"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryHomeServices,
		CategoryDesignCreative,
		CategoryTechnology,
		CategoryEducation,
		CategoryHealthWellness,
	}
}

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	switch c {
	case CategoryHomeServices, CategoryDesignCreative, CategoryTechnology,
		CategoryEducation, CategoryHealthWellness:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// Location is a city from the closed location set.
type Location string

// Available locations.
const (
	LocationMumbai    Location = "Mumbai"
	LocationBangalore Location = "Bangalore"
	LocationDelhi     Location = "Delhi"
	LocationHyderabad Location = "Hyderabad"
	LocationChennai   Location = "Chennai"
	LocationPune      Location = "Pune"
	LocationGurgaon   Location = "Gurgaon"
	LocationJaipur    Location = "Jaipur"
)

// Locations returns every location in display order.
func Locations() []Location {
	return []Location{
		LocationMumbai,
		LocationBangalore,
		LocationDelhi,
		LocationHyderabad,
		LocationChennai,
		LocationPune,
		LocationGurgaon,
		LocationJaipur,
	}
}

// IsValid returns true if the location is recognised.
func (l Location) IsValid() bool {
	for _, known := range Locations() {
		if l == known {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (l Location) String() string {
	return string(l)
}

// Professional is a single catalog entry.
// Entries are loaded once at startup and never mutated.
type Professional struct {
	// ID uniquely identifies the entry for the lifetime of the process.
	ID int

	// Name is the professional's display name.
	Name string

	// Category is one of the closed category set.
	Category Category

	// Subcategory is free text, e.g. "Plumber" or "UI Designer".
	Subcategory string

	// Location is one of the closed location set.
	Location Location

	// Price is the non-negative rate in rupees.
	Price int

	// PriceUnit labels what the price covers, e.g. "hour" or "project".
	PriceUnit string

	// Rating is the average review score between 0 and 5.
	Rating float64

	// Reviews is the number of reviews behind Rating.
	Reviews int

	// Image is a reference to the profile picture.
	Image string
}

// Stars renders the rating as a row of filled stars, rounded half away from zero.
func (p Professional) Stars() string {
	n := int(math.Round(p.Rating))
	if n < 0 {
		n = 0
	}
	return strings.Repeat("★", n)
}

// PriceLabel formats the price with its unit, e.g. "₹400/hour".
func (p Professional) PriceLabel() string {
	return fmt.Sprintf("₹%d/%s", p.Price, p.PriceUnit)
}

// RatingLabel formats the rating with its review count, e.g. "4.8 (127 reviews)".
func (p Professional) RatingLabel() string {
	return fmt.Sprintf("%s (%d reviews)", formatRating(p.Rating), p.Reviews)
}

// formatRating prints a rating without trailing zeros ("4.8", "5").
func formatRating(r float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", r), "0"), ".")
}

// Validate checks the invariants of a catalog entry.
func (p Professional) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: professional %d has no name", ErrInvalidCatalog, p.ID)
	case !p.Category.IsValid():
		return fmt.Errorf("%w: professional %d has unknown category %q", ErrInvalidCatalog, p.ID, p.Category)
	case !p.Location.IsValid():
		return fmt.Errorf("%w: professional %d has unknown location %q", ErrInvalidCatalog, p.ID, p.Location)
	case p.Price < 0:
		return fmt.Errorf("%w: professional %d has negative price", ErrInvalidCatalog, p.ID)
	case p.Rating < 0 || p.Rating > 5:
		return fmt.Errorf("%w: professional %d has rating outside 0-5", ErrInvalidCatalog, p.ID)
	case p.Reviews < 0:
		return fmt.Errorf("%w: professional %d has negative review count", ErrInvalidCatalog, p.ID)
	}
	return nil
}
