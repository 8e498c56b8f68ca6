package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// PriceRange is a price bracket filter.
//
// The empty value disables price filtering. A value containing "-" is a
// bounded range "min-max"; any other value is an open-ended lower bound
// such as "2000+". Bounds are read after stripping every non-digit.
type PriceRange string

// Price presets offered by the filter controls.
const (
	PriceAny     PriceRange = ""
	PriceUpTo500 PriceRange = "0-500"
	Price500To1K PriceRange = "500-1000"
	Price1KTo2K  PriceRange = "1000-2000"
	PriceAbove2K PriceRange = "2000+"
)

// PriceRanges returns the preset brackets in display order, starting with PriceAny.
func PriceRanges() []PriceRange {
	return []PriceRange{PriceAny, PriceUpTo500, Price500To1K, Price1KTo2K, PriceAbove2K}
}

// Label returns the display label for the bracket.
func (r PriceRange) Label() string {
	switch r {
	case PriceAny:
		return "Any Price"
	case PriceUpTo500:
		return "₹0 - ₹500"
	case Price500To1K:
		return "₹500 - ₹1000"
	case Price1KTo2K:
		return "₹1000 - ₹2000"
	case PriceAbove2K:
		return "₹2000+"
	default:
		return string(r)
	}
}

// IsBounded reports whether the value denotes a "min-max" range.
func (r PriceRange) IsBounded() bool {
	return strings.Contains(string(r), "-")
}

// Matches reports whether price passes the bracket.
//
// A bounded range whose bounds do not parse rejects every price, while an
// open-ended bound that does not parse accepts every price.
func (r PriceRange) Matches(price int) bool {
	if r == PriceAny {
		return true
	}

	if r.IsBounded() {
		parts := strings.Split(string(r), "-")
		lo, loOK := parseBound(parts[0])
		hi, hiOK := parseBound(parts[1])
		if !loOK || !hiOK {
			return false
		}
		return price >= lo && price <= hi
	}

	lo, ok := parseBound(string(r))
	if !ok {
		return true
	}
	return price >= lo
}

// parseBound strips non-digits and parses what remains.
// Bounds too large for an int saturate at math.MaxInt.
func parseBound(s string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	n, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, true
	}
	if err != nil {
		return 0, false
	}
	return n, true
}
