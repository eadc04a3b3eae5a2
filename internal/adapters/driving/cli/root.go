// Package cli provides the command-line interface for Cantoria.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
	"github.com/cantoria-labs/cantoria-cli/internal/core/ports/driving"
	"github.com/cantoria-labs/cantoria-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Environment variables consulted when the corresponding flag is unset.
const (
	envAPIKey = "CANTORIA_API_KEY"
	envMode   = "CANTORIA_MODE"
)

var (
	flagVerbose bool
	flagAPIKey  string
	flagMode    string
)

// FinderFactory builds a finder service for a resolved search mode and
// API key. The CLI calls it once per command run, after flags are parsed.
type FinderFactory func(mode domain.SearchMode, apiKey string) driving.FinderService

// finderFactory is injected by the composition root via SetServices.
var finderFactory FinderFactory

var rootCmd = &cobra.Command{
	Use:   "cantoria",
	Short: "Find choral sheet music from natural-language requests",
	Long: `Cantoria interprets natural-language requests for choral sheet music,
extracts structured search parameters (voicing, theme, technique, skill
level) and looks up matching pieces in the CPDL catalog.

When no live catalog is reachable it falls back to a local set of canned
records, so a request always produces results.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose diagnostic output")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "API key for modes that need one (or "+envAPIKey+")")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "search mode: catalog-lookup, generic-web, generative-fallback, local-fallback (or "+envMode+")")
}

// SetServices injects the service factory used by all commands.
// Must be called before Execute.
func SetServices(factory FinderFactory) {
	finderFactory = factory
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveFinder builds a finder for the mode and key resolved from flags
// and environment.
func resolveFinder() (driving.FinderService, error) {
	if finderFactory == nil {
		return nil, errors.New("finder service not configured")
	}
	return finderFactory(resolveMode(), resolveAPIKey()), nil
}

// resolveMode prefers the --mode flag, then the environment, then the
// default. Validation happens downstream: an unknown mode degrades to
// the default with a warning rather than failing the command.
func resolveMode() domain.SearchMode {
	if flagMode != "" {
		return domain.SearchMode(flagMode)
	}
	if env := os.Getenv(envMode); env != "" {
		return domain.SearchMode(env)
	}
	return domain.DefaultSearchMode
}

// resolveAPIKey prefers the --api-key flag over the environment.
func resolveAPIKey() string {
	if flagAPIKey != "" {
		return flagAPIKey
	}
	return os.Getenv(envAPIKey)
}
