// Package services implements the driving port interfaces.
// Services contain the core business logic: instruction parsing and the
// finder orchestration with its fallback guarantee.
//
// Services are pure Go with no external dependencies beyond the logger.
package services
