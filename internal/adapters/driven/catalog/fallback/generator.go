// Package fallback provides the deterministic canned-result generator.
// It serves local-fallback mode and is the universal safety net for
// every other mode's failure path: it never fails and never returns an
// empty sequence.
package fallback

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
	"github.com/cantoria-labs/cantoria-cli/internal/core/ports/driven"
)

// Ensure Generator implements the interface.
var _ driven.Catalog = (*Generator)(nil)

//go:embed records.toml
var recordsTOML []byte

// matchSpec describes when a canned record applies. All set conditions
// must hold.
type matchSpec struct {
	// Voicing must equal the parsed voicing exactly.
	Voicing string `toml:"voicing"`

	// ThemeSet requires any non-empty theme.
	ThemeSet bool `toml:"theme_set"`

	// ThemeContains requires the theme to contain this substring.
	ThemeContains string `toml:"theme_contains"`

	// TechniqueContains requires the lower-cased technique to contain
	// this substring.
	TechniqueContains string `toml:"technique_contains"`

	// Skill must equal the parsed skill level exactly.
	Skill string `toml:"skill"`
}

// cannedRecord is one entry of the embedded catalog.
type cannedRecord struct {
	Title       string `toml:"title"`
	Composer    string `toml:"composer"`
	Voicing     string `toml:"voicing"`
	Theme       string `toml:"theme"`
	Technique   string `toml:"technique"`
	Description string `toml:"description"`
	Source      string `toml:"source"`

	// Difficulty is the fixed grading; when empty the record takes the
	// parsed skill level, or DifficultyDefault as a last resort.
	Difficulty        string `toml:"difficulty"`
	DifficultyDefault string `toml:"difficulty_default"`

	Match matchSpec `toml:"match"`
}

// recordsFile is the embedded TOML document shape.
type recordsFile struct {
	Records []cannedRecord `toml:"records"`
}

// Generator produces deterministic canned results keyed on parameter
// combinations.
type Generator struct {
	records []cannedRecord
}

// NewGenerator creates a generator from the embedded record table.
func NewGenerator() (*Generator, error) {
	var file recordsFile
	if err := toml.Unmarshal(recordsTOML, &file); err != nil {
		return nil, fmt.Errorf("decode embedded records: %w", err)
	}
	return &Generator{records: file.Records}, nil
}

// Search returns every canned record whose match conditions hold, in
// table order. When nothing matches it synthesizes one generic record
// summarizing the parameters, so the result is never empty. The error
// is always nil.
func (g *Generator) Search(_ context.Context, params domain.SearchParameters) ([]domain.SheetMusic, error) {
	var results []domain.SheetMusic

	for _, rec := range g.records {
		if rec.Match.applies(params) {
			results = append(results, rec.toSheetMusic(params))
		}
	}

	if len(results) == 0 {
		results = append(results, genericRecord(params))
	}
	return results, nil
}

// applies reports whether all set conditions hold for the parameters.
func (m matchSpec) applies(params domain.SearchParameters) bool {
	if m.Voicing != "" && params.Voicing.String() != m.Voicing {
		return false
	}
	if m.ThemeSet && params.Theme == "" {
		return false
	}
	if m.ThemeContains != "" && !strings.Contains(params.Theme, m.ThemeContains) {
		return false
	}
	if m.TechniqueContains != "" &&
		!strings.Contains(strings.ToLower(params.Technique), m.TechniqueContains) {
		return false
	}
	if m.Skill != "" && params.SkillLevel.String() != m.Skill {
		return false
	}
	return true
}

// toSheetMusic materialises the record, resolving its difficulty
// against the parsed skill level.
func (r cannedRecord) toSheetMusic(params domain.SearchParameters) domain.SheetMusic {
	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = params.SkillLevel.Title()
	}
	if difficulty == "" {
		difficulty = r.DifficultyDefault
	}

	return domain.SheetMusic{
		Title:       r.Title,
		Composer:    r.Composer,
		Voicing:     r.Voicing,
		Theme:       r.Theme,
		Technique:   r.Technique,
		Difficulty:  difficulty,
		Description: r.Description,
		Source:      r.Source,
	}
}

// genericRecord synthesizes a placeholder summarizing the parameters.
func genericRecord(params domain.SearchParameters) domain.SheetMusic {
	voicing := params.Voicing.String()
	if voicing == "" {
		voicing = "Mixed"
	}
	theme := params.Theme
	if theme == "" {
		theme = "General"
	}
	difficulty := params.SkillLevel.Title()
	if difficulty == "" {
		difficulty = "Various"
	}

	var summary []string
	for _, part := range []string{params.Voicing.String(), params.Theme, params.Technique} {
		if part != "" {
			summary = append(summary, part)
		}
	}

	return domain.SheetMusic{
		Title:       "Choral Piece - " + voicing,
		Composer:    "Various",
		Voicing:     voicing,
		Theme:       theme,
		Difficulty:  difficulty,
		Description: strings.TrimSpace("Sheet music matching: " + strings.Join(summary, " ")),
		Source:      "Music database",
	}
}
