package fallback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
)

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator()
	require.NoError(t, err)
	return g
}

func TestGenerator_NeverEmpty(t *testing.T) {
	g := newGenerator(t)

	results, err := g.Search(context.Background(), domain.SearchParameters{})

	require.NoError(t, err)
	assert.NotEmpty(t, results)
}

func TestGenerator_SATBOvertoneNature(t *testing.T) {
	g := newGenerator(t)

	params := domain.SearchParameters{
		Voicing:   domain.VoicingSATB,
		Theme:     "Spring Earth",
		Technique: "overtone singing",
	}
	results, err := g.Search(context.Background(), params)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Singing in Tune with Nature", results[0].Title)
	assert.Equal(t, "Amanda Cole", results[0].Composer)
	assert.Equal(t, "SATB", results[0].Voicing)
	assert.Equal(t, "Advanced", results[0].Difficulty)
	assert.Equal(t, "N.E.O. Voice Festival 2020", results[0].Source)
}

func TestGenerator_SATBOvertoneRequiresTheme(t *testing.T) {
	g := newGenerator(t)

	params := domain.SearchParameters{
		Voicing:   domain.VoicingSATB,
		Technique: "overtone singing",
	}
	results, err := g.Search(context.Background(), params)

	require.NoError(t, err)
	require.Len(t, results, 1)
	// No theme, so only the generic placeholder applies.
	assert.Equal(t, "Choral Piece - SATB", results[0].Title)
}

func TestGenerator_TBEarth(t *testing.T) {
	g := newGenerator(t)

	params := domain.SearchParameters{Voicing: domain.VoicingTB, Theme: "Earth"}
	results, err := g.Search(context.Background(), params)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "For the Beauty of the Earth", results[0].Title)
	assert.Equal(t, "John Rutter", results[0].Composer)
	assert.Equal(t, "TTBB", results[0].Voicing)
	// No skill level parsed: the record's default applies.
	assert.Equal(t, "Intermediate", results[0].Difficulty)
}

func TestGenerator_TBEarthBeginningAddsCollection(t *testing.T) {
	g := newGenerator(t)

	params := domain.SearchParameters{
		Voicing:    domain.VoicingTB,
		Theme:      "Earth",
		SkillLevel: domain.SkillBeginning,
	}
	results, err := g.Search(context.Background(), params)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "For the Beauty of the Earth", results[0].Title)
	assert.Equal(t, "Beginning", results[0].Difficulty)
	assert.Equal(t, "First Songs for Emerging Tenor-Bass Choir", results[1].Title)
	assert.Equal(t, "Mark Patterson (arr.)", results[1].Composer)
	assert.Equal(t, "Carl Fischer", results[1].Source)
}

func TestGenerator_GenericRecordSummarisesParameters(t *testing.T) {
	g := newGenerator(t)

	params := domain.SearchParameters{
		Voicing:    domain.VoicingSSAA,
		Theme:      "Spring",
		SkillLevel: domain.SkillAdvanced,
	}
	results, err := g.Search(context.Background(), params)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Choral Piece - SSAA", results[0].Title)
	assert.Equal(t, "SSAA", results[0].Voicing)
	assert.Equal(t, "Spring", results[0].Theme)
	assert.Equal(t, "Advanced", results[0].Difficulty)
	assert.Equal(t, "Sheet music matching: SSAA Spring", results[0].Description)
	assert.Equal(t, "Music database", results[0].Source)
}

func TestGenerator_DeterministicAcrossCalls(t *testing.T) {
	g := newGenerator(t)
	params := domain.SearchParameters{Voicing: domain.VoicingTB, Theme: "Earth"}

	first, err := g.Search(context.Background(), params)
	require.NoError(t, err)
	second, err := g.Search(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
