package cli

import (
	"context"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
	"github.com/cantoria-labs/cantoria-cli/internal/core/ports/driving"
)

// mockFinder is a mock implementation of driving.FinderService.
type mockFinder struct {
	report    domain.FindReport
	results   []domain.SheetMusic
	fellBack  bool
	panicWith any
}

func (m *mockFinder) Find(_ context.Context, instruction string) domain.FindReport {
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	report := m.report
	report.Instruction = instruction
	return report
}

func (m *mockFinder) Search(
	_ context.Context,
	_ domain.SearchParameters,
) ([]domain.SheetMusic, bool) {
	return m.results, m.fellBack
}

// testReport is a representative report used across command tests.
func testReport() domain.FindReport {
	return domain.FindReport{
		Parameters: domain.SearchParameters{
			Voicing: domain.VoicingSATB,
			Theme:   "Spring Earth",
		},
		Results: []domain.SheetMusic{
			{
				Title:      "Singing in Tune with Nature",
				Composer:   "Amanda Cole",
				Voicing:    "SATB",
				Difficulty: "Advanced",
				Source:     "N.E.O. Voice Festival 2020",
			},
		},
	}
}

// setupTestServices installs a factory returning a canned finder and
// records what mode and key the commands resolved. The cleanup restores
// the previous factory and resets the persistent flags.
func setupTestServices() func() {
	return setupTestServicesWith(&mockFinder{report: testReport()}, nil, nil)
}

func setupTestServicesWith(
	finder driving.FinderService,
	modeSeen *domain.SearchMode,
	keySeen *string,
) func() {
	oldFactory := finderFactory
	finderFactory = func(mode domain.SearchMode, apiKey string) driving.FinderService {
		if modeSeen != nil {
			*modeSeen = mode
		}
		if keySeen != nil {
			*keySeen = apiKey
		}
		return finder
	}

	return func() {
		finderFactory = oldFactory
		flagVerbose = false
		flagAPIKey = ""
		flagMode = ""
		findJSON = false
	}
}
