// Command cantoria finds choral sheet music from natural-language requests.
package main

import (
	"fmt"
	"os"

	"github.com/cantoria-labs/cantoria-cli/internal/adapters/driven/catalog/cpdl"
	"github.com/cantoria-labs/cantoria-cli/internal/adapters/driven/catalog/fallback"
	"github.com/cantoria-labs/cantoria-cli/internal/adapters/driven/catalog/generative"
	"github.com/cantoria-labs/cantoria-cli/internal/adapters/driven/catalog/websearch"
	"github.com/cantoria-labs/cantoria-cli/internal/adapters/driving/cli"
	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
	"github.com/cantoria-labs/cantoria-cli/internal/core/ports/driven"
	"github.com/cantoria-labs/cantoria-cli/internal/core/ports/driving"
	"github.com/cantoria-labs/cantoria-cli/internal/core/services"
)

func main() {
	generator, err := fallback.NewGenerator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	parser := services.NewParser()

	cli.SetServices(func(mode domain.SearchMode, apiKey string) driving.FinderService {
		catalogs := map[domain.SearchMode]driven.Catalog{
			domain.ModeCatalogLookup:      cpdl.NewClient(cpdl.Config{}),
			domain.ModeGenericWeb:         websearch.NewCatalog(apiKey),
			domain.ModeGenerativeFallback: generative.NewCatalog(apiKey),
		}
		return services.NewFinder(parser, mode, catalogs, generator)
	})

	cli.Execute()
}
