package cpdl

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
)

// maxDescriptionLen is the character budget for result descriptions.
const maxDescriptionLen = 200

// CPDL titles usually carry the composer in parentheses, e.g.
// "Cantate Domino (Hans Leo Hassler)". Some pages write "by Name".
var (
	parenComposerRe = regexp.MustCompile(`\(([^)]+)\)`)
	byComposerRe    = regexp.MustCompile(`\bby\s+([A-Z][A-Za-z .'-]+)`)
)

// mapPage converts one wiki page into a SheetMusic record.
func mapPage(page pageDetail, params domain.SearchParameters) domain.SheetMusic {
	voicing := params.Voicing.String()
	if voicing == "" {
		if v, ok := domain.MatchVoicing(page.Extract); ok {
			voicing = v.String()
		}
	}

	theme := params.Theme
	if theme == "" {
		theme = "General"
	}

	difficulty := params.SkillLevel.Title()
	if difficulty == "" {
		difficulty = "Unknown"
	}

	return domain.SheetMusic{
		Title:       page.Title,
		Composer:    composerFromTitle(page.Title),
		Voicing:     voicing,
		Theme:       theme,
		Technique:   params.Technique,
		Difficulty:  difficulty,
		Description: truncate(strings.TrimSpace(page.Extract), maxDescriptionLen),
		Source:      "CPDL",
		URL:         pageURL(page),
	}
}

// composerFromTitle extracts the composer from a page title, trying the
// parenthetical form first, then "by Name". Defaults to "Unknown".
func composerFromTitle(title string) string {
	if m := parenComposerRe.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := byComposerRe.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "Unknown"
}

// truncate cuts s to max runes, appending an ellipsis when shortened.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// pageURL returns the canonical page link when the API provided one,
// otherwise constructs it from the title the way MediaWiki does:
// spaces become underscores and the result is percent-encoded.
func pageURL(page pageDetail) string {
	if page.CanonicalURL != "" {
		return page.CanonicalURL
	}
	if page.FullURL != "" {
		return page.FullURL
	}
	title := strings.ReplaceAll(page.Title, " ", "_")
	return "https://www.cpdl.org/wiki/index.php/" + url.PathEscape(title)
}
