package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce collapses the burst of events a spreadsheet save produces.
const watchDebounce = 300 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	var showData bool
	cmd := &cobra.Command{
		Use:   "watch <file.xlsx>",
		Short: "Critique a workbook again every time it is saved",
		Long: `Critique a workbook, then keep watching it and critique it again after
every save. Press Ctrl+C to stop.`,
		Example: `  codebook watch survey.xlsx`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd, args[0], showData)
		},
	}
	cmd.Flags().BoolVar(&showData, "show-data", false, "Print the cleaned sheet tables")
	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, path string, showData bool) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}

	critique := func() {
		report, err := critiqueFile(ctx, cc, abs)
		if err != nil {
			r.Error(err.Error())
			return
		}
		renderReport(r, report, showData)
	}
	critique()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Spreadsheet editors replace the file on save, so watch its directory.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	r.Muted(fmt.Sprintf("Watching %s for changes. Press Ctrl+C to stop.", path))

	changed := make(chan struct{}, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSaveOf(event, abs) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				select {
				case changed <- struct{}{}:
				default:
				}
			})
		case <-changed:
			cc.Logger.Debug("workbook changed", "path", abs)
			r.Println("")
			r.Muted(fmt.Sprintf("Change detected at %s", time.Now().Format(time.TimeOnly)))
			critique()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cc.Logger.Warn("watcher error", "error", err)
		}
	}
}

// isSaveOf reports whether event writes or recreates the watched file.
// Lock files such as "~$survey.xlsx" have other names and are ignored.
func isSaveOf(event fsnotify.Event, path string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == path
}
