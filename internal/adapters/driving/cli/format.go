package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
)

var (
	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	styleTitle = lipgloss.NewStyle().
			Bold(true)

	styleLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	styleWarning = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// renderReport prints a full find report: the parsed parameters followed
// by the result list.
func renderReport(cmd *cobra.Command, report domain.FindReport) {
	cmd.Println(styleHeading.Render("Parsed parameters"))
	renderParameters(cmd, report.Parameters)
	cmd.Println()

	if report.FellBack {
		cmd.Println(styleWarning.Render("Live catalog unavailable, showing local results."))
		cmd.Println()
	}

	renderResults(cmd, report.Results)
}

func renderParameters(cmd *cobra.Command, params domain.SearchParameters) {
	if params.IsEmpty() {
		cmd.Println("  (nothing extracted)")
		return
	}

	printField(cmd, "Voicing", params.Voicing.String())
	printField(cmd, "Theme", params.Theme)
	printField(cmd, "Technique", params.Technique)
	printField(cmd, "Skill level", params.SkillLevel.String())
	printField(cmd, "Ensemble", params.EnsembleName)
	printField(cmd, "Keywords", strings.Join(params.AdditionalKeywords, ", "))
}

func printField(cmd *cobra.Command, label, value string) {
	if value == "" {
		return
	}
	cmd.Printf("  %s %s\n", styleLabel.Render(label+":"), value)
}

func renderResults(cmd *cobra.Command, results []domain.SheetMusic) {
	cmd.Println(styleHeading.Render("Results"))

	if len(results) == 0 {
		cmd.Println("  No results found.")
		return
	}

	for i, piece := range results {
		cmd.Printf("  [%d] %s\n", i+1, styleTitle.Render(piece.Title))
		printField(cmd, "    Composer", piece.Composer)
		printField(cmd, "    Voicing", piece.Voicing)
		printField(cmd, "    Theme", piece.Theme)
		printField(cmd, "    Technique", piece.Technique)
		printField(cmd, "    Difficulty", piece.Difficulty)
		printField(cmd, "    Description", piece.Description)
		printField(cmd, "    Source", piece.Source)
		printField(cmd, "    URL", piece.URL)
		cmd.Println()
	}
}
