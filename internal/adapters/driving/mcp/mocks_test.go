package mcp

import (
	"context"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
)

// mockFinderService is a mock implementation of driving.FinderService.
type mockFinderService struct {
	report   domain.FindReport
	results  []domain.SheetMusic
	fellBack bool
}

func (m *mockFinderService) Find(_ context.Context, instruction string) domain.FindReport {
	report := m.report
	report.Instruction = instruction
	return report
}

func (m *mockFinderService) Search(
	_ context.Context,
	_ domain.SearchParameters,
) ([]domain.SheetMusic, bool) {
	return m.results, m.fellBack
}
