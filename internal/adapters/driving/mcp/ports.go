package mcp

import (
	"github.com/cantoria-labs/cantoria-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Finder processes natural-language sheet-music requests.
	Finder driving.FinderService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Finder == nil {
		return ErrMissingFinderService
	}
	return nil
}
