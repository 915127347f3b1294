// Package cli provides the cobra-based command line interface. Commands
// hold no business logic; they parse flags, call the driving ports, and
// format output.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/cboldwyn/dc-label/internal/core/ports/driven"
	"github.com/cboldwyn/dc-label/internal/core/ports/driving"
	"github.com/cboldwyn/dc-label/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. Commands check for nil so the CLI can be
// exercised in tests without full wiring.
var (
	mergeService    driving.MergeService
	recordService   driving.RecordService
	generateService driving.GenerationService
	symbolCatalog   driven.SymbolCatalog
	configStore     driven.ConfigStore
	runStore        driven.RunStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "dclabel",
	Short: "Generate ZPL case and package labels from inventory exports",
	Long: `dclabel merges a packages export and a products export into a
canonical record set and renders deterministic 4"x2" ZPL label batches.

A typical session:

  dclabel records packages.csv products.csv --summary
  dclabel generate packages.csv products.csv --mode case
  dclabel preview packages.csv products.csv A001`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

// Services bundles everything the CLI needs injected.
type Services struct {
	Merge    driving.MergeService
	Records  driving.RecordService
	Generate driving.GenerationService
	Catalog  driven.SymbolCatalog
	Config   driven.ConfigStore
	Runs     driven.RunStore
}

// SetServices injects the service implementations used by commands.
func SetServices(s Services) {
	mergeService = s.Merge
	recordService = s.Records
	generateService = s.Generate
	symbolCatalog = s.Catalog
	configStore = s.Config
	runStore = s.Runs
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
