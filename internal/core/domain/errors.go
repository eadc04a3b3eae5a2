package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. None of them escapes the
// finder's public boundary: every catalog failure is recovered by the
// local fallback generator.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidMode indicates an unrecognised search mode.
	ErrInvalidMode = errors.New("invalid search mode")

	// ErrNotImplemented indicates functionality is not yet available.
	// The web-search and generative backends are stubs that report this.
	ErrNotImplemented = errors.New("not implemented")

	// ErrCredentialsRequired indicates the selected mode needs an API key
	// but none is configured. The finder falls back to canned records.
	ErrCredentialsRequired = errors.New("credentials required")

	// ErrNoResults indicates a catalog call succeeded but yielded no
	// usable pages. Recovered by the fallback, never surfaced.
	ErrNoResults = errors.New("no results")

	// ErrCatalogUnavailable indicates the remote catalog could not be
	// reached (network error, timeout, non-2xx status).
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
