package cpdl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
)

func TestComposerFromTitle(t *testing.T) {
	assert.Equal(t, "Hans Leo Hassler", composerFromTitle("Cantate Domino (Hans Leo Hassler)"))
	assert.Equal(t, "William Henry Monk", composerFromTitle("Abide with Me by William Henry Monk"))
	assert.Equal(t, "Unknown", composerFromTitle("Anonymous plainchant"))
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 250)
	got := truncate(long, maxDescriptionLen)

	assert.Len(t, got, maxDescriptionLen+3)
	assert.True(t, strings.HasSuffix(got, "..."))

	short := "a brief extract"
	assert.Equal(t, short, truncate(short, maxDescriptionLen))
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "https://example.org/canonical",
		pageURL(pageDetail{CanonicalURL: "https://example.org/canonical", FullURL: "https://example.org/full"}))

	assert.Equal(t, "https://example.org/full",
		pageURL(pageDetail{FullURL: "https://example.org/full"}))

	assert.Equal(t, "https://www.cpdl.org/wiki/index.php/Ave_Maria_(Franz_Schubert)",
		pageURL(pageDetail{Title: "Ave Maria (Franz Schubert)"}))
}

func TestMapPage_VoicingFromParams(t *testing.T) {
	page := pageDetail{Title: "Locus iste (Anton Bruckner)", Extract: "A TTBB motet."}
	params := domain.SearchParameters{Voicing: domain.VoicingSATB}

	got := mapPage(page, params)

	assert.Equal(t, "SATB", got.Voicing)
}

func TestMapPage_VoicingFromExtract(t *testing.T) {
	page := pageDetail{Title: "Locus iste (Anton Bruckner)", Extract: "A motet for SATB choir."}

	got := mapPage(page, domain.SearchParameters{})

	assert.Equal(t, "SATB", got.Voicing)
	assert.Equal(t, "Anton Bruckner", got.Composer)
	assert.Equal(t, "General", got.Theme)
	assert.Equal(t, "Unknown", got.Difficulty)
	assert.Equal(t, "CPDL", got.Source)
}

func TestMapPage_DifficultyFromSkill(t *testing.T) {
	page := pageDetail{Title: "Simple Gifts"}
	params := domain.SearchParameters{SkillLevel: domain.SkillBeginning, Theme: "Earth"}

	got := mapPage(page, params)

	assert.Equal(t, "Beginning", got.Difficulty)
	assert.Equal(t, "Earth", got.Theme)
}

func TestSearchTerms_StructuredParameters(t *testing.T) {
	params := domain.SearchParameters{
		Voicing:   domain.VoicingSATB,
		Theme:     "Spring Earth",
		Technique: "circular breathing",
	}

	// The leading "Spring " is stripped from the theme.
	assert.Equal(t, []string{"SATB", "Earth", "circular breathing"}, searchTerms(params))
}

func TestSearchTerms_OvertoneSingingExcluded(t *testing.T) {
	params := domain.SearchParameters{
		Voicing:   domain.VoicingSATB,
		Technique: "overtone singing",
	}

	assert.Equal(t, []string{"SATB"}, searchTerms(params))
}

func TestSearchTerms_FallbackToQueryTokens(t *testing.T) {
	// No structured terms: the first three non-stopword tokens of the
	// full query stand in.
	params := domain.SearchParameters{AdditionalKeywords: []string{"for", "hymnal", "choir"}}

	assert.Equal(t, []string{"hymnal", "choir", "sheet"}, searchTerms(params))
}

func TestSearchTerms_NeverEmpty(t *testing.T) {
	assert.NotEmpty(t, searchTerms(domain.SearchParameters{}))
}
