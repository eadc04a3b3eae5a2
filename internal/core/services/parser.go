package services

import (
	"regexp"
	"strings"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
	"github.com/cantoria-labs/cantoria-cli/internal/core/ports/driving"
)

// Ensure Parser implements the interface.
var _ driving.InstructionParser = (*Parser)(nil)

// skillRule pairs a synonym pattern with the level it normalises to.
type skillRule struct {
	pattern *regexp.Regexp
	level   domain.SkillLevel
}

// skillRules is matched against a lower-cased copy of the instruction;
// first match wins.
var skillRules = []skillRule{
	{regexp.MustCompile(`\bbeginning\b`), domain.SkillBeginning},
	{regexp.MustCompile(`\bbeginner\b`), domain.SkillBeginning},
	{regexp.MustCompile(`\bintermediate\b`), domain.SkillIntermediate},
	{regexp.MustCompile(`\badvanced\b`), domain.SkillAdvanced},
	{regexp.MustCompile(`\bemerging\b`), domain.SkillBeginning},
}

// themeRule pairs a literal phrase with the theme it assigns.
type themeRule struct {
	phrase string
	theme  string
}

// themeRules is evaluated top to bottom with case-insensitive substring
// matching. Longer phrases precede the shorter phrases they contain, so
// "Spring Earth" wins over "Earth" and "Spring".
var themeRules = []themeRule{
	{"Spring Earth", "Spring Earth"},
	{"Earth theme", "Earth"},
	{"Earth", "Earth"},
	{"Spring", "Spring"},
}

// techniquePhrase is the single technique currently recognised.
const techniquePhrase = "overtone singing"

// Ensemble name extraction: "for <Word>" followed by ':' or '.', with a
// looser fallback for "for <Word> ." at a sentence end. Both run against
// the original-case text so the captured name keeps its capitalisation.
var (
	ensembleRe         = regexp.MustCompile(`(?i)for\s+(\w+)[:.]`)
	ensembleFallbackRe = regexp.MustCompile(`(?i)for\s+(\w+)\s*\.`)
)

// quotedRe captures double-quoted substrings verbatim.
var quotedRe = regexp.MustCompile(`"([^"]+)"`)

// genericKeywords are choral nouns collected whenever they appear in the
// instruction (substring match) and are not already in the keyword list.
var genericKeywords = []string{"choir", "choral", "piece", "pieces"}

// Parser extracts structured search parameters from natural-language
// instructions using ordered decision lists.
type Parser struct{}

// NewParser creates a new instruction parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts search parameters from an instruction. It never fails:
// a pattern that does not match simply leaves its field unset, so an
// instruction with nothing recognisable yields an empty record.
func (p *Parser) Parse(instruction string) domain.SearchParameters {
	lower := strings.ToLower(instruction)
	params := domain.SearchParameters{}

	// Voicing comes from the shared vocabulary in domain so the catalog
	// extract mapper scans with exactly the same table.
	if voicing, ok := domain.MatchVoicing(instruction); ok {
		params.Voicing = voicing
	}

	for _, rule := range skillRules {
		if rule.pattern.MatchString(lower) {
			params.SkillLevel = rule.level
			break
		}
	}

	for _, rule := range themeRules {
		if strings.Contains(lower, strings.ToLower(rule.phrase)) {
			params.Theme = rule.theme
			break
		}
	}

	if strings.Contains(lower, techniquePhrase) {
		params.Technique = techniquePhrase
	}

	if m := ensembleRe.FindStringSubmatch(instruction); m != nil {
		params.EnsembleName = m[1]
	} else if m := ensembleFallbackRe.FindStringSubmatch(instruction); m != nil {
		params.EnsembleName = m[1]
	}

	for _, m := range quotedRe.FindAllStringSubmatch(instruction, -1) {
		params.AdditionalKeywords = append(params.AdditionalKeywords, m[1])
	}
	for _, keyword := range genericKeywords {
		if strings.Contains(lower, keyword) && !containsString(params.AdditionalKeywords, keyword) {
			params.AdditionalKeywords = append(params.AdditionalKeywords, keyword)
		}
	}

	return params
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
