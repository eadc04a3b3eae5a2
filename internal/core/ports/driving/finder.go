package driving

import (
	"context"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
)

// InstructionParser converts a raw instruction into structured parameters.
type InstructionParser interface {
	// Parse extracts search parameters from a natural-language
	// instruction. It never fails: a pattern that does not match simply
	// leaves its field unset.
	Parse(instruction string) domain.SearchParameters
}

// FinderService processes instructions end to end: parse, search, bundle.
type FinderService interface {
	// Find parses the instruction, queries the configured catalog and
	// returns the bundled report. The report always carries at least one
	// result; catalog failures are recovered via the local fallback and
	// never surface as errors.
	Find(ctx context.Context, instruction string) domain.FindReport

	// Search looks up sheet music for already-parsed parameters.
	Search(ctx context.Context, params domain.SearchParameters) ([]domain.SheetMusic, bool)
}
