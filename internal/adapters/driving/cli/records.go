package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cboldwyn/dc-label/internal/core/domain"
)

var (
	recordsSummary bool
	recordsFilters filterFlags
)

var recordsCmd = &cobra.Command{
	Use:   "records [packages.csv] [products.csv]",
	Short: "Show the merged record set",
	Long: `Merges both exports and lists the canonical records that generation
would run over, including stored overrides. Use --summary for overview
metrics instead of the full listing.`,
	Args: cobra.ExactArgs(2),
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&recordsSummary, "summary", false, "print overview metrics only")
	recordsFilters.register(recordsCmd)
	rootCmd.AddCommand(recordsCmd)
}

func runRecords(cmd *cobra.Command, args []string) error {
	filter, err := recordsFilters.filter()
	if err != nil {
		return err
	}

	records, err := loadRecords(context.Background(), args[0], args[1])
	if err != nil {
		return err
	}
	records = filter.Apply(records)

	if recordsSummary {
		printSummary(cmd, domain.Summarize(records))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No records match.")
		return nil
	}

	for _, r := range records {
		line := fmt.Sprintf("%-24s %-40s qty %s", r.PackageLabel, displayName(r), domain.FormatNumeric(r.Quantity))
		if r.HasCaseData() {
			line += fmt.Sprintf("  case %s x%d", domain.FormatNumeric(r.UnitsPerCase), r.CaseLabelsNeeded)
		}
		if r.LabelOverride != nil {
			line += fmt.Sprintf("  override %d", *r.LabelOverride)
		}
		cmd.Println(line)
	}
	cmd.Printf("\n%d record(s)\n", len(records))
	return nil
}

func displayName(r domain.CanonicalLabelRecord) string {
	if r.Brand != "" {
		return r.Brand + " / " + r.ProductNameClean
	}
	return r.ProductNameRaw
}

func printSummary(cmd *cobra.Command, s domain.Summary) {
	cmd.Printf("Packages:       %d\n", s.TotalPackages)
	cmd.Printf("Unique brands:  %d\n", s.UniqueBrands)
	cmd.Printf("Unique vendors: %d\n", s.UniqueVendors)
	cmd.Printf("Total quantity: %s\n", domain.FormatNumeric(s.TotalQuantity))
	cmd.Printf("With case data: %d\n", s.WithCaseData)
}
