package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cboldwyn/dc-label/internal/adapters/driven/delivery"
	"github.com/cboldwyn/dc-label/internal/core/ports/driving"
	"github.com/cboldwyn/dc-label/internal/logger"
)

var (
	generateMode      string
	generateOutputDir string
	generateClipboard bool
	generateStdout    bool
	generateFilters   filterFlags
)

var generateCmd = &cobra.Command{
	Use:   "generate [packages.csv] [products.csv]",
	Short: "Generate a ZPL label batch",
	Long: `Merges both exports, applies stored label overrides, and renders one
ZPL document per planned label.

In package mode every record gets one label. In case mode a record gets
one label per case, computed from its quantity and units-per-case; a
stored override replaces either count. The batch is written to a file
named after its brands, mode, and timestamp.`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateMode, "mode", "m", "", "label mode: package or case (default from config)")
	generateCmd.Flags().StringVarP(&generateOutputDir, "output", "o", "", "output directory (default from config)")
	generateCmd.Flags().BoolVar(&generateClipboard, "clipboard", false, "copy the batch to the system clipboard instead of a file")
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "print the batch to stdout instead of a file")
	generateFilters.register(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateService == nil {
		return errors.New("generation service not configured")
	}

	mode, err := parseMode(generateMode)
	if err != nil {
		return err
	}

	filter, err := generateFilters.filter()
	if err != nil {
		return err
	}

	ctx := context.Background()
	records, err := loadRecords(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	records = filter.Apply(records)
	logger.Debug("Loaded %d records after filtering", len(records))

	result, err := generateService.Generate(ctx, records, driving.GenerateOptions{Mode: mode})
	if err != nil {
		return fmt.Errorf("generating batch: %w", err)
	}

	for _, skip := range result.Skipped {
		logger.Warn("Skipped %s: %s", skip.PackageLabel, skip.Reason)
	}

	switch {
	case generateStdout:
		cmd.Println(result.Content)
	case generateClipboard:
		sink := delivery.NewClipboardSink()
		if err := sink.Deliver(ctx, result.Filename, result.Content); err != nil {
			return err
		}
		cmd.Printf("Copied %d labels to clipboard\n", result.Labels)
	default:
		dir := generateOutputDir
		if dir == "" && configStore != nil {
			dir = configStore.GetString("output.dir")
		}
		sink := delivery.NewFileSink(dir)
		if err := sink.Deliver(ctx, result.Filename, result.Content); err != nil {
			return err
		}
		cmd.Printf("Wrote %d labels to %s\n", result.Labels, sink.Path(result.Filename))
	}

	if len(result.Skipped) > 0 {
		cmd.Printf("%d record(s) skipped; run with --verbose for reasons\n", len(result.Skipped))
	}

	return nil
}
