package domain

import "regexp"

// voicingRule pairs a compiled pattern with the voicing it assigns.
type voicingRule struct {
	pattern *regexp.Regexp
	tag     Voicing
}

// voicingRules is the shared voicing vocabulary, evaluated top to bottom
// with first match winning. Word boundaries keep TB from matching inside
// TTBB or "TBD". Both the instruction parser and the catalog extract
// mapper scan with this table, so order is load-bearing: it stays a
// slice, never a map.
var voicingRules = []voicingRule{
	{regexp.MustCompile(`(?i)\bSATB\b`), VoicingSATB},
	{regexp.MustCompile(`(?i)\bTB\b`), VoicingTB},
	{regexp.MustCompile(`(?i)\bTTBB\b`), VoicingTTBB},
	{regexp.MustCompile(`(?i)\bSSA\b`), VoicingSSA},
	{regexp.MustCompile(`(?i)\bSSAA\b`), VoicingSSAA},
	{regexp.MustCompile(`(?i)\bSAB\b`), VoicingSAB},
	{regexp.MustCompile(`(?i)\btenor-bass\b`), VoicingTB},
	{regexp.MustCompile(`(?i)\btenor bass\b`), VoicingTB},
}

// MatchVoicing scans text for the first voicing in the vocabulary,
// case-insensitively and respecting word boundaries. The boolean reports
// whether anything matched.
func MatchVoicing(text string) (Voicing, bool) {
	for _, rule := range voicingRules {
		if rule.pattern.MatchString(text) {
			return rule.tag, true
		}
	}
	return "", false
}
