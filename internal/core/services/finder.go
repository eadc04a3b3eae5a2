package services

import (
	"context"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
	"github.com/cantoria-labs/cantoria-cli/internal/core/ports/driven"
	"github.com/cantoria-labs/cantoria-cli/internal/core/ports/driving"
	"github.com/cantoria-labs/cantoria-cli/internal/logger"
)

// Ensure Finder implements the interface.
var _ driving.FinderService = (*Finder)(nil)

// searchOutcome is the internal tagged result of a catalog lookup:
// either live records, or fallback records with the reason we fell back.
// It is collapsed to a plain slice at the public boundary.
type searchOutcome struct {
	results  []domain.SheetMusic
	fellBack bool
	reason   string
}

// Finder orchestrates instruction processing: parse, search, bundle.
// Its public contract is total: it always returns at least one result
// and never raises, whatever the configured backend does.
type Finder struct {
	parser   driving.InstructionParser
	mode     domain.SearchMode
	catalogs map[domain.SearchMode]driven.Catalog
	fallback driven.Catalog
}

// NewFinder creates a finder that dispatches to catalogs by search mode.
// The fallback catalog serves ModeLocalFallback and every failure path;
// it must never fail and never return an empty slice.
func NewFinder(
	parser driving.InstructionParser,
	mode domain.SearchMode,
	catalogs map[domain.SearchMode]driven.Catalog,
	fallback driven.Catalog,
) *Finder {
	if !mode.IsValid() {
		logger.Warn("Unknown search mode %q, using %s", mode, domain.DefaultSearchMode)
		mode = domain.DefaultSearchMode
	}
	return &Finder{
		parser:   parser,
		mode:     mode,
		catalogs: catalogs,
		fallback: fallback,
	}
}

// Mode returns the configured search mode.
func (f *Finder) Mode() domain.SearchMode {
	return f.mode
}

// Find processes one instruction end to end.
func (f *Finder) Find(ctx context.Context, instruction string) domain.FindReport {
	logger.Section("Instruction Processing")
	logger.Debug("Instruction: %q", instruction)

	params := f.parser.Parse(instruction)
	logger.Debug("Parsed: voicing=%q theme=%q technique=%q skill=%q ensemble=%q keywords=%v",
		params.Voicing, params.Theme, params.Technique,
		params.SkillLevel, params.EnsembleName, params.AdditionalKeywords)

	results, fellBack := f.Search(ctx, params)

	return domain.FindReport{
		Instruction: instruction,
		Parameters:  params,
		Results:     results,
		FellBack:    fellBack,
	}
}

// Search looks up sheet music for already-parsed parameters. The boolean
// reports whether the results came from the local fallback generator.
func (f *Finder) Search(ctx context.Context, params domain.SearchParameters) ([]domain.SheetMusic, bool) {
	out := f.lookup(ctx, params)
	if out.fellBack {
		logger.Warn("Using local fallback results: %s", out.reason)
	}
	logger.Info("Results: %d (mode=%s, fallback=%t)", len(out.results), f.mode, out.fellBack)
	return out.results, out.fellBack
}

// lookup runs the configured backend and degrades to canned records on
// any failure: transport errors, missing credentials, empty responses,
// or a panic during result mapping. The named return lets the recover
// path replace the outcome.
func (f *Finder) lookup(ctx context.Context, params domain.SearchParameters) (out searchOutcome) {
	logger.Section("Catalog Search")
	logger.Info("Search mode: %s", f.mode.Description())

	if f.mode == domain.ModeLocalFallback {
		return searchOutcome{results: f.canned(ctx, params)}
	}

	catalog, ok := f.catalogs[f.mode]
	if !ok {
		return searchOutcome{
			results:  f.canned(ctx, params),
			fellBack: true,
			reason:   "no backend registered for mode " + f.mode.String(),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Catalog backend panicked: %v", r)
			out = searchOutcome{
				results:  f.canned(ctx, params),
				fellBack: true,
				reason:   "unexpected failure during result mapping",
			}
		}
	}()

	results, err := catalog.Search(ctx, params)
	if err != nil {
		return searchOutcome{
			results:  f.canned(ctx, params),
			fellBack: true,
			reason:   err.Error(),
		}
	}
	if len(results) == 0 {
		return searchOutcome{
			results:  f.canned(ctx, params),
			fellBack: true,
			reason:   "catalog returned no usable results",
		}
	}

	logger.Debug("Live results: %d", len(results))
	return searchOutcome{results: results}
}

// canned fetches deterministic records from the fallback generator.
// The generator guarantees a non-empty, error-free response.
func (f *Finder) canned(ctx context.Context, params domain.SearchParameters) []domain.SheetMusic {
	results, err := f.fallback.Search(ctx, params)
	if err != nil {
		// The generator contract forbids this; keep the total-function
		// guarantee anyway.
		logger.Warn("Fallback generator error: %v", err)
		return []domain.SheetMusic{{
			Title:       "Choral Piece - Mixed",
			Composer:    "Various",
			Voicing:     "Mixed",
			Theme:       "General",
			Difficulty:  "Various",
			Description: "Sheet music matching: " + params.Query(),
			Source:      "Music database",
		}}
	}
	return results
}
