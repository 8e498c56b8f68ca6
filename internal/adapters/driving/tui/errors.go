package tui

import "errors"

// ErrMissingMarketplace is returned when the marketplace is not provided.
var ErrMissingMarketplace = errors.New("tui: marketplace is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
