package cpdl

import (
	"strings"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
)

// overtoneSinging is excluded from catalog search terms: the phrase is
// rare on CPDL and drowns out the structural terms.
const overtoneSinging = "overtone singing"

// stopwords excluded when tokenising the full query as a last resort.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"for": true, "of": true, "on": true, "in": true, "to": true,
	"that": true, "with": true, "about": true,
}

// fallbackTermCount is how many query tokens are used when no structured
// parameter produced a term.
const fallbackTermCount = 3

// searchTerms builds the narrowed term list for the wiki search call.
// Structured parameters are preferred: voicing, then theme with any
// leading "Spring " prefix stripped, then technique. When none of them
// produced a term, the first few non-stopword tokens of the full query
// stand in, so the list is never empty.
func searchTerms(params domain.SearchParameters) []string {
	var terms []string

	if params.Voicing != "" {
		terms = append(terms, params.Voicing.String())
	}
	if params.Theme != "" {
		terms = append(terms, strings.TrimPrefix(params.Theme, "Spring "))
	}
	if params.Technique != "" && params.Technique != overtoneSinging {
		terms = append(terms, params.Technique)
	}

	if len(terms) == 0 {
		terms = queryTokens(params.Query(), fallbackTermCount)
	}
	return terms
}

// queryTokens returns up to max non-stopword tokens of the query,
// in order.
func queryTokens(query string, max int) []string {
	var tokens []string
	for _, field := range strings.Fields(query) {
		if stopwords[strings.ToLower(field)] {
			continue
		}
		tokens = append(tokens, field)
		if len(tokens) == max {
			break
		}
	}
	return tokens
}
