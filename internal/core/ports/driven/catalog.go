package driven

import (
	"context"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
)

// Catalog is a sheet-music search backend.
type Catalog interface {
	// Search looks up sheet music matching the parameters. Live backends
	// return domain.ErrCatalogUnavailable on transport failures,
	// domain.ErrNoResults when nothing mappable came back, and
	// domain.ErrCredentialsRequired when they need a missing API key.
	// The finder recovers all three via the local fallback generator.
	Search(ctx context.Context, params domain.SearchParameters) ([]domain.SheetMusic, error)
}
