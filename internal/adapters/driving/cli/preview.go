package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cboldwyn/dc-label/internal/core/domain"
	"github.com/cboldwyn/dc-label/internal/core/ports/driving"
)

var previewMode string

var previewCmd = &cobra.Command{
	Use:   "preview [packages.csv] [products.csv] [package-label]",
	Short: "Print the ZPL for a single record",
	Long: `Composes the documents one record would contribute to a batch and
prints them without writing anything. Useful for pasting into a ZPL
viewer before committing to a full run.`,
	Args: cobra.ExactArgs(3),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewMode, "mode", "m", "", "label mode: package or case (default from config)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if generateService == nil {
		return errors.New("generation service not configured")
	}

	mode, err := parseMode(previewMode)
	if err != nil {
		return err
	}

	ctx := context.Background()
	records, err := loadRecords(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	label := args[2]
	var record *domain.CanonicalLabelRecord
	for i := range records {
		if records[i].PackageLabel == label {
			record = &records[i]
			break
		}
	}
	if record == nil {
		return fmt.Errorf("package label %q: %w", label, domain.ErrNotFound)
	}

	docs, err := generateService.Preview(ctx, *record, driving.GenerateOptions{Mode: mode})
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		cmd.Printf("Record %s would be skipped in %s mode\n", label, mode)
		return nil
	}

	cmd.Printf("Record %s contributes %d label(s) in %s mode\n\n", label, len(docs), mode)
	cmd.Println(docs[0])
	if len(docs) > 1 {
		cmd.Printf("\n(repeated %d times in the batch)\n", len(docs))
	}
	return nil
}
