// Package domain defines the core business entities for Cantoria.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchParameters: Structured parameters extracted from an instruction
//   - SheetMusic: A single piece of choral sheet music found in a catalog
//   - FindReport: The bundled outcome of processing one instruction
//   - SearchMode: Which catalog backend performs the lookup
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
