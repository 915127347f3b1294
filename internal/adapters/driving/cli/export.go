package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/cboldwyn/dc-label/internal/adapters/driven/delivery"
	"github.com/cboldwyn/dc-label/internal/core/domain"
)

var (
	exportOut     string
	exportFilters filterFlags
)

var exportCmd = &cobra.Command{
	Use:   "export [packages.csv] [products.csv]",
	Short: "Export the merged record set as CSV",
	Long: `Writes the canonical record set, including derived fields and stored
overrides, as a CSV file for spreadsheet review.`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output directory (default from config)")
	exportFilters.register(exportCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	filter, err := exportFilters.filter()
	if err != nil {
		return err
	}

	ctx := context.Background()
	records, err := loadRecords(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	records = filter.Apply(records)

	content := recordService.ExportCSV(records)
	filename := domain.ExportFilename(time.Now())

	dir := exportOut
	if dir == "" && configStore != nil {
		dir = configStore.GetString("output.dir")
	}
	sink := delivery.NewFileSink(dir)
	if err := sink.Deliver(ctx, filename, content); err != nil {
		return err
	}

	cmd.Printf("Exported %d record(s) to %s\n", len(records), sink.Path(filename))
	return nil
}
