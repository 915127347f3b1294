package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cboldwyn/dc-label/internal/core/domain"
)

// filterFlags are the record-narrowing flags shared by several
// commands.
type filterFlags struct {
	dates   []string
	brands  []string
	vendors []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.dates, "date", nil, "only records created on this date (YYYY-MM-DD, repeatable)")
	cmd.Flags().StringSliceVar(&f.brands, "brand", nil, "only records of this brand (repeatable)")
	cmd.Flags().StringSliceVar(&f.vendors, "vendor", nil, "only records from this vendor (repeatable)")
}

// filter builds the domain filter from the parsed flags.
func (f *filterFlags) filter() (domain.RecordFilter, error) {
	var out domain.RecordFilter
	for _, d := range f.dates {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return domain.RecordFilter{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", d)
		}
		out.Dates = append(out.Dates, parsed)
	}
	out.Brands = f.brands
	out.Vendors = f.vendors
	return out, nil
}

// parseMode resolves the --mode flag, falling back to the configured
// default when the flag is empty.
func parseMode(flag string) (domain.Mode, error) {
	if flag == "" && configStore != nil {
		flag = configStore.GetString("generate.mode")
	}
	if flag == "" {
		flag = string(domain.ModePackage)
	}

	mode := domain.Mode(strings.ToLower(flag))
	if !mode.Valid() {
		return "", fmt.Errorf("invalid mode %q: want %q or %q", flag, domain.ModePackage, domain.ModeCase)
	}
	return mode, nil
}

// loadRecords merges both exports and attaches stored overrides.
func loadRecords(ctx context.Context, packagesPath, productsPath string) ([]domain.CanonicalLabelRecord, error) {
	if mergeService == nil {
		return nil, errors.New("merge service not configured")
	}

	records, err := mergeService.Process(ctx, packagesPath, productsPath)
	if err != nil {
		return nil, err
	}

	if recordService != nil {
		records, err = recordService.ApplyOverrides(ctx, records)
		if err != nil {
			return nil, err
		}
	}

	return records, nil
}
