package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchVoicing(t *testing.T) {
	v, ok := MatchVoicing("a TTBB arrangement of the hymn")
	assert.True(t, ok)
	assert.Equal(t, VoicingTTBB, v)

	v, ok = MatchVoicing("for tenor bass choir")
	assert.True(t, ok)
	assert.Equal(t, VoicingTB, v)

	// Tags never leak across word boundaries.
	_, ok = MatchVoicing("see the TBD section")
	assert.False(t, ok)

	_, ok = MatchVoicing("a cappella motet")
	assert.False(t, ok)
}
