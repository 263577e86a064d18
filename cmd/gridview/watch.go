package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/germtb/grid/term"
	"github.com/spf13/cobra"
)

const clearScreen = "\x1b[H\x1b[2J"

type watchOptions struct {
	debounce time.Duration
	clear    bool
}

func newWatchCmd(render *renderOptions) *cobra.Command {
	opts := &watchOptions{}
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Print a layout file again every time it changes",
		Long: `watch prints the layout like gridview does, then waits for the file to
change and prints it again. A file that fails to load is reported on stderr
and watching goes on. Interrupt to stop.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], render, opts)
		},
	}
	f := cmd.Flags()
	f.DurationVar(&opts.debounce, "debounce", 100*time.Millisecond, "how long to wait for more changes before printing")
	f.BoolVar(&opts.clear, "clear", true, "clear the terminal before each print")
	return cmd
}

func runWatch(cmd *cobra.Command, path string, render *renderOptions, opts *watchOptions) error {
	logger, err := newLogger(cmd.ErrOrStderr(), render.logLevel)
	if err != nil {
		return err
	}
	color, err := useColor(render.color, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	show := func() error {
		s, err := renderFile(path, render, logger, nil)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return nil
		}
		if opts.clear {
			if _, err := io.WriteString(out, clearScreen); err != nil {
				return err
			}
		}
		return term.WriteBuffer(out, s.Render(), color)
	}
	if err := show(); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Close()
	// Editors often replace the file, so the directory is watched.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	return watchLoop(cmd.Context(), w, path, opts.debounce, logger, show)
}

// watchLoop calls onChange once per burst of events touching path, after
// debounce has passed without another one. It returns when ctx is done or
// the watcher closes.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, debounce time.Duration, logger *slog.Logger, onChange func() error) error {
	path = filepath.Clean(path)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("layout file changed", "file", path, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "file", path, "error", err)
		case <-fire:
			fire = nil
			if err := onChange(); err != nil {
				return err
			}
		}
	}
}
