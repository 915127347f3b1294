package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cboldwyn/dc-label/internal/adapters/driven/delivery"
	"github.com/cboldwyn/dc-label/internal/adapters/driving/tui"
)

var tuiMode string

var tuiCmd = &cobra.Command{
	Use:   "tui [packages.csv] [products.csv]",
	Short: "Launch the interactive record browser",
	Long: `Launch the interactive terminal interface over the merged record set.

Browse records, pin or suppress label counts, switch between package
and case mode, and generate the batch without leaving the terminal.

Controls:
  ↑/k, ↓/j - Navigate records
  m        - Toggle label mode
  o        - Edit the selected record's override
  g        - Generate the batch
  r        - Reload the exports
  q        - Quit`,
	Args: cobra.ExactArgs(2),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiMode, "mode", "m", "", "initial label mode: package or case")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the TUI requires an interactive terminal")
	}

	mode, err := parseMode(tuiMode)
	if err != nil {
		return err
	}

	// Panic recovery so terminal state is explained, not just garbled.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	outputDir := ""
	if configStore != nil {
		outputDir = configStore.GetString("output.dir")
	}

	ports := &tui.Ports{
		Merge:    mergeService,
		Records:  recordService,
		Generate: generateService,
		Sink:     delivery.NewFileSink(outputDir),
	}

	app, err := tui.NewApp(ports, tui.Config{
		PackagesPath: args[0],
		ProductsPath: args[1],
		Mode:         mode,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
