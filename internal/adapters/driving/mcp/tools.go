package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FindInput is the input schema for the find_sheet_music tool.
type FindInput struct {
	Instruction string `json:"instruction" jsonschema:"natural-language request describing the sheet music to find"`
}

// FindOutput is the output schema for the find_sheet_music tool.
type FindOutput struct {
	Parameters ParametersOutput   `json:"parameters"`
	Results    []SheetMusicOutput `json:"results"`
	Count      int                `json:"count"`
	FellBack   bool               `json:"fell_back"`
}

// ParametersOutput echoes the parameters parsed from the instruction.
type ParametersOutput struct {
	Voicing    string   `json:"voicing,omitempty"`
	Theme      string   `json:"theme,omitempty"`
	Technique  string   `json:"technique,omitempty"`
	SkillLevel string   `json:"skill_level,omitempty"`
	Ensemble   string   `json:"ensemble,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
}

// SheetMusicOutput represents a single found piece.
type SheetMusicOutput struct {
	Title       string `json:"title"`
	Composer    string `json:"composer,omitempty"`
	Voicing     string `json:"voicing,omitempty"`
	Theme       string `json:"theme,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`
	URL         string `json:"url,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_sheet_music",
		Description: "Interpret a natural-language request and find matching choral sheet music",
	}, s.handleFind)
}

// handleFind handles the find_sheet_music tool invocation.
func (s *Server) handleFind(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindInput,
) (*mcp.CallToolResult, FindOutput, error) {
	report := s.ports.Finder.Find(ctx, input.Instruction)

	output := FindOutput{
		Parameters: ParametersOutput{
			Voicing:    report.Parameters.Voicing.String(),
			Theme:      report.Parameters.Theme,
			Technique:  report.Parameters.Technique,
			SkillLevel: report.Parameters.SkillLevel.String(),
			Ensemble:   report.Parameters.EnsembleName,
			Keywords:   report.Parameters.AdditionalKeywords,
		},
		Results:  make([]SheetMusicOutput, len(report.Results)),
		Count:    len(report.Results),
		FellBack: report.FellBack,
	}

	for i := range report.Results {
		output.Results[i] = SheetMusicOutput{
			Title:       report.Results[i].Title,
			Composer:    report.Results[i].Composer,
			Voicing:     report.Results[i].Voicing,
			Theme:       report.Results[i].Theme,
			Difficulty:  report.Results[i].Difficulty,
			Description: report.Results[i].Description,
			Source:      report.Results[i].Source,
			URL:         report.Results[i].URL,
		}
	}

	return nil, output, nil
}
