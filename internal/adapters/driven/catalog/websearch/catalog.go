// Package websearch is a Catalog adapter for a generic web search API.
// No live integration is implemented: every call resolves to the local
// fallback via the errors it returns.
package websearch

import (
	"context"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
	"github.com/cantoria-labs/cantoria-cli/internal/core/ports/driven"
	"github.com/cantoria-labs/cantoria-cli/internal/logger"
)

// Ensure Catalog implements the interface.
var _ driven.Catalog = (*Catalog)(nil)

// Catalog is the web search backend stub.
type Catalog struct {
	apiKey string
}

// NewCatalog creates a web search catalog with the given API key.
func NewCatalog(apiKey string) *Catalog {
	return &Catalog{apiKey: apiKey}
}

// Search always resolves to the local fallback. Without a key it reports
// the missing credential; with one it reports the unimplemented
// integration. Either way the finder serves canned records.
func (c *Catalog) Search(_ context.Context, _ domain.SearchParameters) ([]domain.SheetMusic, error) {
	if c.apiKey == "" {
		logger.Warn("No API key configured for web search; using local fallback results")
		return nil, domain.ErrCredentialsRequired
	}
	return nil, domain.ErrNotImplemented
}
