package domain

import "strings"

// SearchParameters is the structured record extracted from a single
// natural-language instruction. Every field is optional: the parser only
// ever assigns values, it never requires them, so a fully empty record is
// valid input to the rest of the pipeline.
//
// A SearchParameters value is constructed fresh per instruction and is
// treated as immutable once parsing completes.
type SearchParameters struct {
	// Voicing is the requested vocal-part configuration, if any.
	Voicing Voicing `json:"voicing,omitempty"`

	// Theme is the requested subject matter, e.g. "Spring Earth".
	Theme string `json:"theme,omitempty"`

	// Technique is a requested vocal technique, e.g. "overtone singing".
	Technique string `json:"technique,omitempty"`

	// SkillLevel is the requested difficulty of the piece.
	SkillLevel SkillLevel `json:"skill_level,omitempty"`

	// EnsembleName is the choir the pieces are being sought for.
	EnsembleName string `json:"ensemble_name,omitempty"`

	// AdditionalKeywords holds quoted phrases and generic choral nouns
	// found in the instruction, in order of appearance, de-duplicated.
	AdditionalKeywords []string `json:"additional_keywords,omitempty"`
}

// IsEmpty returns true if no field was extracted.
func (p SearchParameters) IsEmpty() bool {
	return p.Voicing == "" &&
		p.Theme == "" &&
		p.Technique == "" &&
		p.SkillLevel == "" &&
		p.EnsembleName == "" &&
		len(p.AdditionalKeywords) == 0
}

// Query builds the full search query string from the parameters.
// Parts are concatenated in a fixed order: voicing, theme, technique,
// "<skill> choir", ensemble name, additional keywords, then the trailing
// sheet-music terms. Re-parsing the resulting string recovers the same
// voicing, theme and technique.
func (p SearchParameters) Query() string {
	parts := make([]string, 0, 8+len(p.AdditionalKeywords))

	if p.Voicing != "" {
		parts = append(parts, p.Voicing.String())
	}
	if p.Theme != "" {
		parts = append(parts, p.Theme)
	}
	if p.Technique != "" {
		parts = append(parts, p.Technique)
	}
	if p.SkillLevel != "" {
		parts = append(parts, p.SkillLevel.String()+" choir")
	}
	if p.EnsembleName != "" {
		parts = append(parts, p.EnsembleName)
	}
	parts = append(parts, p.AdditionalKeywords...)

	parts = append(parts, "sheet music", "choral piece", "choral music")

	return strings.Join(parts, " ")
}
