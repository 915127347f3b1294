package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/cboldwyn/dc-label/internal/core/domain"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "Show the weekly symbol rotation",
	Long: `Lists all symbols in the rotation and marks the one active this ISO
week. Labels carry the symbol for the week their package was created.`,
	Args: cobra.NoArgs,
	RunE: runSymbols,
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}

func runSymbols(cmd *cobra.Command, _ []string) error {
	if symbolCatalog == nil {
		return errors.New("symbol catalog not configured")
	}

	current := domain.WeekSlotForTime(time.Now())
	for _, sym := range symbolCatalog.Symbols() {
		marker := " "
		if sym.Slot == current {
			marker = "*"
		}
		cmd.Printf("%s %2d  %s\n", marker, sym.Slot, sym.Name)
	}
	return nil
}
