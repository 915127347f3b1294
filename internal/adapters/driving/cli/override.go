package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Manage per-package label overrides",
	Long: `Label overrides pin the document count for individual packages.

A positive count replaces whatever the label mode would produce. Zero
suppresses the package entirely. Clearing the override returns the
package to normal mode behavior.`,
}

var overrideSetCmd = &cobra.Command{
	Use:   "set [package-label] [count]",
	Short: "Pin the label count for a package",
	Args:  cobra.ExactArgs(2),
	RunE:  runOverrideSet,
}

var overrideClearCmd = &cobra.Command{
	Use:   "clear [package-label]",
	Short: "Remove a stored override",
	Args:  cobra.ExactArgs(1),
	RunE:  runOverrideClear,
}

var overrideListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored overrides",
	Args:  cobra.NoArgs,
	RunE:  runOverrideList,
}

func init() {
	overrideCmd.AddCommand(overrideSetCmd)
	overrideCmd.AddCommand(overrideClearCmd)
	overrideCmd.AddCommand(overrideListCmd)
	rootCmd.AddCommand(overrideCmd)
}

func runOverrideSet(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	count, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid count %q: %w", args[1], err)
	}

	if err := recordService.SetOverride(context.Background(), args[0], count); err != nil {
		return err
	}

	if count == 0 {
		cmd.Printf("Package %s suppressed\n", args[0])
	} else {
		cmd.Printf("Package %s pinned to %d label(s)\n", args[0], count)
	}
	return nil
}

func runOverrideClear(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	if err := recordService.ClearOverride(context.Background(), args[0]); err != nil {
		return err
	}
	cmd.Printf("Override for %s cleared\n", args[0])
	return nil
}

func runOverrideList(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	overrides, err := recordService.ListOverrides(context.Background())
	if err != nil {
		return err
	}

	if len(overrides) == 0 {
		cmd.Println("No overrides stored.")
		return nil
	}

	labels := make([]string, 0, len(overrides))
	for label := range overrides {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		count := overrides[label]
		if count == 0 {
			cmd.Printf("%-24s suppressed\n", label)
		} else {
			cmd.Printf("%-24s %d label(s)\n", label, count)
		}
	}
	return nil
}
