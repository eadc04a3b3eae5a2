// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Cantoria. It lets AI assistants interpret sheet-music requests
// through the same finder pipeline as the CLI.
package mcp

import "errors"

// ErrMissingFinderService is returned when the finder service is not provided.
var ErrMissingFinderService = errors.New("mcp: finder service is required")
