package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "cantoria", rootCmd.Use)
}

func TestRootCmd_HasPersistentFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("api-key"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("mode"))
}

func TestResolveMode(t *testing.T) {
	t.Run("defaults to catalog lookup", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()

		assert.Equal(t, domain.ModeCatalogLookup, resolveMode())
	})

	t.Run("flag wins", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()

		flagMode = "local-fallback"
		t.Setenv(envMode, "generic-web")

		assert.Equal(t, domain.ModeLocalFallback, resolveMode())
	})

	t.Run("environment fills in for missing flag", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()

		t.Setenv(envMode, "generic-web")

		assert.Equal(t, domain.ModeGenericWeb, resolveMode())
	})

	t.Run("unknown values pass through unchanged", func(t *testing.T) {
		// Degrading an unknown mode to the default is the finder's job,
		// so the resolver does not validate.
		cleanup := setupTestServices()
		defer cleanup()

		flagMode = "telepathy"

		assert.Equal(t, domain.SearchMode("telepathy"), resolveMode())
	})
}

func TestResolveAPIKey(t *testing.T) {
	t.Run("empty without flag or environment", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()

		assert.Empty(t, resolveAPIKey())
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()

		flagAPIKey = "from-flag"
		t.Setenv(envAPIKey, "from-env")

		assert.Equal(t, "from-flag", resolveAPIKey())
	})

	t.Run("environment fills in for missing flag", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()

		t.Setenv(envAPIKey, "from-env")

		assert.Equal(t, "from-env", resolveAPIKey())
	})
}
