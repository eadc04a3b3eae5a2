package domain

// SheetMusic is a single catalog entry matching a search. It has no
// identity beyond structural equality: it is produced by a catalog
// backend and consumed by the renderer, nothing else.
type SheetMusic struct {
	// Title is the piece title as given by the catalog.
	Title string `json:"title"`

	// Composer is the composer or arranger, "Unknown" if not determined.
	Composer string `json:"composer"`

	// Voicing is the vocal configuration of this arrangement. Catalog
	// entries may carry voicings outside the parser's vocabulary
	// (e.g. "Mixed"), so this is a free string rather than a Voicing.
	Voicing string `json:"voicing"`

	// Theme is the subject matter of the piece.
	Theme string `json:"theme"`

	// Technique is a notable vocal technique, if any.
	Technique string `json:"technique,omitempty"`

	// Difficulty grades the piece for performers.
	Difficulty string `json:"difficulty"`

	// Description is a short introduction, truncated to 200 characters.
	Description string `json:"description"`

	// Source names where the entry came from (catalog, publisher).
	Source string `json:"source"`

	// URL links to the catalog page, when known.
	URL string `json:"url,omitempty"`
}

// FindReport bundles everything produced for one instruction: the raw
// text, the parameters extracted from it, and the pieces found.
type FindReport struct {
	// Instruction is the original natural-language request.
	Instruction string `json:"instruction"`

	// Parameters is the structured record parsed from the instruction.
	Parameters SearchParameters `json:"parsed_parameters"`

	// Results holds the matched pieces. Never empty: the local fallback
	// generator guarantees at least one record.
	Results []SheetMusic `json:"search_results"`

	// FellBack is true when the results came from the local fallback
	// generator rather than a live catalog lookup.
	FellBack bool `json:"fell_back,omitempty"`
}
