package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/germtb/grid"
	"github.com/germtb/grid/gridmetrics"
	"github.com/germtb/grid/internal/layoutfile"
	"github.com/germtb/grid/term"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	width, height int
	color         string
	logLevel      string
	metrics       bool
	tree          bool
}

func newRootCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "gridview FILE",
		Short: "Lay out a grid layout file and print it",
		Long: `gridview reads a layout document (.yaml, .yml or .toml), lays it out
with the grid geometry manager and prints the screen.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}
	pf := cmd.PersistentFlags()
	pf.IntVar(&opts.width, "width", 0, "screen width; defaults to the file, then the terminal")
	pf.IntVar(&opts.height, "height", 0, "screen height; defaults to the file, then the terminal")
	pf.StringVar(&opts.color, "color", "auto", "ANSI styles: auto, always or never")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	f := cmd.Flags()
	f.BoolVar(&opts.metrics, "metrics", false, "write layout metrics to stderr in Prometheus text format")
	f.BoolVar(&opts.tree, "tree", false, "print the node tree after the screen")

	cmd.AddCommand(newCheckCmd(), newWatchCmd(opts))
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "check FILE",
		Short:        "Validate a layout file without rendering it",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := layoutfile.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d nodes\n", args[0], countNodes(&doc.Root))
			return nil
		},
	}
}

func countNodes(n *layoutfile.Node) int {
	count := 1
	for i := range n.Children {
		count += countNodes(&n.Children[i])
	}
	return count
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("bad --log-level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

func useColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := out.(*os.File)
		return ok && term.ColorEnabled(f), nil
	}
	return false, fmt.Errorf("bad --color %q: must be auto, always or never", mode)
}

func runRender(cmd *cobra.Command, path string, opts *renderOptions) error {
	logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
	if err != nil {
		return err
	}
	color, err := useColor(opts.color, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector := gridmetrics.New()
	reg.MustRegister(collector)

	s, err := renderFile(path, opts, logger, collector)
	if err != nil {
		return err
	}
	if err := term.WriteBuffer(cmd.OutOrStdout(), s.Render(), color); err != nil {
		return err
	}
	if opts.tree {
		term.FprintTree(cmd.OutOrStdout(), s)
	}
	if opts.metrics {
		return writeMetrics(cmd.ErrOrStderr(), reg)
	}
	return nil
}

// renderFile loads path and lays it out on a new screen.
func renderFile(path string, opts *renderOptions, logger *slog.Logger, observer grid.Observer) (*term.Screen, error) {
	doc, err := layoutfile.Load(path)
	if err != nil {
		return nil, err
	}
	width, height := doc.PrintOptions(term.PrintOptions{Width: opts.width, Height: opts.height}).Size()
	logger.Debug("rendering layout", "file", path, "width", width, "height", height)
	mopts := []grid.ManagerOption{grid.WithLogger(logger)}
	if observer != nil {
		mopts = append(mopts, grid.WithObserver(observer))
	}
	s := term.NewScreen(width, height, mopts...)
	root, err := doc.VNode()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := term.Mount(s, root); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
