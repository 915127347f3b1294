// Command dclabel generates ZPL case and package labels from Distru
// inventory exports.
package main

import (
	"fmt"
	"os"

	"github.com/cboldwyn/dc-label/internal/adapters/driven/catalog/embedded"
	"github.com/cboldwyn/dc-label/internal/adapters/driven/config/file"
	"github.com/cboldwyn/dc-label/internal/adapters/driven/ingest/csvfile"
	"github.com/cboldwyn/dc-label/internal/adapters/driven/storage/sqlite"
	"github.com/cboldwyn/dc-label/internal/adapters/driving/cli"
	"github.com/cboldwyn/dc-label/internal/core/services"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore(configStore.GetString("data.dir"))
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	catalog, err := embedded.NewCatalog()
	if err != nil {
		return fmt.Errorf("loading symbol catalog: %w", err)
	}

	runStore := store.RunStore()

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Merge:    services.NewMergeService(csvfile.NewSource()),
		Records:  services.NewRecordService(store.OverrideStore()),
		Generate: services.NewGenerateService(catalog, runStore),
		Catalog:  catalog,
		Config:   configStore,
		Runs:     runStore,
	})

	return cli.Execute()
}
