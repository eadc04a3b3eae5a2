package domain

// Voicing identifies the vocal-part configuration of a choral piece.
type Voicing string

// Recognised voicings.
const (
	// VoicingSATB is mixed choir: Soprano, Alto, Tenor, Bass.
	VoicingSATB Voicing = "SATB"

	// VoicingTB is tenor-bass (two-part men's) choir.
	VoicingTB Voicing = "TB"

	// VoicingTTBB is four-part tenor-bass choir.
	VoicingTTBB Voicing = "TTBB"

	// VoicingSSA is three-part treble choir.
	VoicingSSA Voicing = "SSA"

	// VoicingSSAA is four-part treble choir.
	VoicingSSAA Voicing = "SSAA"

	// VoicingSAB is three-part mixed choir.
	VoicingSAB Voicing = "SAB"
)

// IsValid returns true if the voicing is recognised.
func (v Voicing) IsValid() bool {
	switch v {
	case VoicingSATB, VoicingTB, VoicingTTBB, VoicingSSA, VoicingSSAA, VoicingSAB:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (v Voicing) String() string {
	return string(v)
}

// Description returns a human-readable description of the voicing.
func (v Voicing) Description() string {
	switch v {
	case VoicingSATB:
		return "Mixed choir (Soprano/Alto/Tenor/Bass)"
	case VoicingTB:
		return "Tenor-bass choir (two-part)"
	case VoicingTTBB:
		return "Tenor-bass choir (four-part)"
	case VoicingSSA:
		return "Treble choir (three-part)"
	case VoicingSSAA:
		return "Treble choir (four-part)"
	case VoicingSAB:
		return "Mixed choir (Soprano/Alto/Baritone)"
	default:
		return unknownDescription
	}
}

// SkillLevel grades how demanding a piece is for the singers.
type SkillLevel string

// Recognised skill levels. Surface synonyms ("beginner", "emerging")
// normalise to SkillBeginning during parsing.
const (
	SkillBeginning    SkillLevel = "beginning"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// IsValid returns true if the skill level is recognised.
func (l SkillLevel) IsValid() bool {
	switch l {
	case SkillBeginning, SkillIntermediate, SkillAdvanced:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l SkillLevel) String() string {
	return string(l)
}

// Title returns the capitalised display form, e.g. "Beginning".
func (l SkillLevel) Title() string {
	switch l {
	case SkillBeginning:
		return "Beginning"
	case SkillIntermediate:
		return "Intermediate"
	case SkillAdvanced:
		return "Advanced"
	default:
		return ""
	}
}
