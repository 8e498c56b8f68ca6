// Package mcp provides an MCP (Model Context Protocol) server adapter for ProConnect.
// It lets AI assistants log in, search the catalog and hire professionals.
package mcp

import "errors"

// ErrMissingMarketplace is returned when the marketplace is not provided.
var ErrMissingMarketplace = errors.New("mcp: marketplace is required")
