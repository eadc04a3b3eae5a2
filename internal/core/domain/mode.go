package domain

const unknownDescription = "Unknown"

// SearchMode selects which catalog backend performs the lookup.
type SearchMode string

// Available search modes.
const (
	// ModeCatalogLookup queries the CPDL wiki catalog over HTTP.
	ModeCatalogLookup SearchMode = "catalog-lookup"

	// ModeGenericWeb queries a generic web search API (stub, needs a key).
	ModeGenericWeb SearchMode = "generic-web"

	// ModeGenerativeFallback asks a generative API (stub, needs a key).
	ModeGenerativeFallback SearchMode = "generative-fallback"

	// ModeLocalFallback serves deterministic canned records only.
	ModeLocalFallback SearchMode = "local-fallback"
)

// DefaultSearchMode is used when no mode is configured.
const DefaultSearchMode = ModeCatalogLookup

// IsValid returns true if the search mode is recognised.
func (m SearchMode) IsValid() bool {
	switch m {
	case ModeCatalogLookup, ModeGenericWeb, ModeGenerativeFallback, ModeLocalFallback:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this mode needs a configured credential.
func (m SearchMode) RequiresAPIKey() bool {
	return m == ModeGenericWeb || m == ModeGenerativeFallback
}

// String returns the string representation.
func (m SearchMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m SearchMode) Description() string {
	switch m {
	case ModeCatalogLookup:
		return "Catalog Lookup (CPDL wiki search)"
	case ModeGenericWeb:
		return "Generic Web (web search API)"
	case ModeGenerativeFallback:
		return "Generative Fallback (generative API)"
	case ModeLocalFallback:
		return "Local Fallback (canned records)"
	default:
		return unknownDescription
	}
}
