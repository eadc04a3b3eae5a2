// Package driving defines the interfaces through which external actors
// (CLI commands, the MCP server, tests) drive the core.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
