package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/aledsdavies/advent/pkgs/input"
	"github.com/aledsdavies/advent/pkgs/puzzle"
)

const debounceDelay = 200 * time.Millisecond

func (a *app) watchCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "watch <day>",
		Short: "Re-solve a day every time its input file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := puzzle.Canonical(args[0])
			solve, err := a.registry.Lookup(name)
			if err != nil {
				return err
			}
			path := inputPath
			if path == "" {
				path = a.cfg.InputPath(name)
			}
			if path == input.Stdin {
				return &CLIError{Message: "watch needs a file, not stdin", Code: ExitFailure}
			}

			a.solveOnce(cmd, name, path, solve)
			return a.watch(cmd.Context(), path, func() {
				a.solveOnce(cmd, name, path, solve)
			})
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file to watch")
	return cmd
}

// solveOnce prints the answer or the error; watching continues either way
func (a *app) solveOnce(cmd *cobra.Command, name, path string, solve puzzle.Solver) {
	out := cmd.OutOrStdout()
	data, err := input.Load(path)
	if err == nil {
		var ans puzzle.Answer
		if ans, err = solve(data); err == nil {
			_, _ = fmt.Fprintf(out, "%s  %s\n", Colorize(name, ColorCyan, a.useColor), ans)
			return
		}
	}
	FormatError(a.stderr, err, a.useColor, a.debug)
}

// watch calls onChange after writes to path settle. The parent directory is
// watched so editors that replace the file are still seen.
func (a *app) watch(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	a.logger.Info("watching for changes", "path", path)

	target := filepath.Clean(path)
	timer := time.NewTimer(debounceDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("stopping watcher")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			a.logger.Debug("input changed", "file", event.Name, "op", event.Op.String())
			timer.Reset(debounceDelay)

		case <-timer.C:
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Error("watcher error", "error", err)
		}
	}
}
