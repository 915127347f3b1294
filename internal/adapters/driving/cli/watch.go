package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/cboldwyn/dc-label/internal/adapters/driven/delivery"
	"github.com/cboldwyn/dc-label/internal/core/ports/driving"
	"github.com/cboldwyn/dc-label/internal/logger"
)

var (
	watchMode      string
	watchOutputDir string
)

var watchCmd = &cobra.Command{
	Use:   "watch [packages.csv] [products.csv]",
	Short: "Regenerate the batch whenever an export changes",
	Long: `Watches both export files and regenerates the label batch each time
either one is rewritten. Useful when the exports land in a shared
folder and labels should follow automatically.

Stops on Ctrl-C.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchMode, "mode", "m", "", "label mode: package or case (default from config)")
	watchCmd.Flags().StringVarP(&watchOutputDir, "output", "o", "", "output directory (default from config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if generateService == nil {
		return errors.New("generation service not configured")
	}

	mode, err := parseMode(watchMode)
	if err != nil {
		return err
	}

	packagesPath, productsPath := args[0], args[1]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directories: editors and export jobs replace
	// files rather than writing in place, which drops inode watches.
	watched := map[string]bool{}
	for _, p := range []string{packagesPath, productsPath} {
		dir := filepath.Dir(p)
		if !watched[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			}
			watched[dir] = true
		}
	}

	debounce := 500 * time.Millisecond
	if configStore != nil {
		if ms := configStore.GetInt("watch.debounce_ms"); ms > 0 {
			debounce = time.Duration(ms) * time.Millisecond
		}
	}

	targets := map[string]bool{
		filepath.Clean(packagesPath): true,
		filepath.Clean(productsPath): true,
	}

	ctx := context.Background()

	regenerate := func() {
		records, err := loadRecords(ctx, packagesPath, productsPath)
		if err != nil {
			cmd.PrintErrf("regeneration failed: %v\n", err)
			return
		}
		result, err := generateService.Generate(ctx, records, driving.GenerateOptions{Mode: mode})
		if err != nil {
			cmd.PrintErrf("regeneration failed: %v\n", err)
			return
		}

		dir := watchOutputDir
		if dir == "" && configStore != nil {
			dir = configStore.GetString("output.dir")
		}
		sink := delivery.NewFileSink(dir)
		if err := sink.Deliver(ctx, result.Filename, result.Content); err != nil {
			cmd.PrintErrf("writing batch: %v\n", err)
			return
		}
		cmd.Printf("Wrote %d labels to %s\n", result.Labels, sink.Path(result.Filename))
	}

	cmd.Printf("Watching %s and %s (Ctrl-C to stop)\n", packagesPath, productsPath)
	regenerate()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("Change detected: %s %s", event.Op, event.Name)

			// Debounce: export jobs write in bursts.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			regenerate()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrf("watch error: %v\n", err)

		case <-sig:
			cmd.Println("\nStopped.")
			return nil
		}
	}
}
