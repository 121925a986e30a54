package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/advent/pkgs/config"
	_ "github.com/aledsdavies/advent/pkgs/days"
	"github.com/aledsdavies/advent/pkgs/puzzle"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// app carries state shared by every subcommand
type app struct {
	configPath string
	debug      bool
	noColor    bool

	stdout   io.Writer
	stderr   io.Writer
	cfg      *config.Config
	logger   *slog.Logger
	useColor bool
	registry *puzzle.Registry
}

// execute runs the command tree and returns the exit code
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{
		stdout:   stdout,
		stderr:   stderr,
		registry: puzzle.Default,
	}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		FormatError(stderr, err, a.useColor, a.debug)
	}
	return exitCode(err)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "advent",
		Short:         "Solve daily puzzles from their input files",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config file (default: $ADVENT_CONFIG, ./advent.toml)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug output")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(a.runCmd(), a.listCmd(), a.scanCmd(), a.watchCmd())
	return root
}

// setup loads configuration and builds the logger
func (a *app) setup() error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	a.useColor = ShouldUseColor(a.stdout, a.noColor, a.cfg.Color)
	a.logger = newLogger(a.stderr, a.debug, a.cfg.LogLevel)
	if a.cfg.Path != "" {
		a.logger.Debug("loaded config", "path", a.cfg.Path)
	}
	return nil
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered puzzles and their input files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.registry.Names() {
				path := a.cfg.InputPath(name)
				status := Colorize("ok", ColorGreen, a.useColor)
				if _, err := os.Stat(path); err != nil {
					status = Colorize("missing", ColorGray, a.useColor)
				}
				_, _ = cmd.OutOrStdout().Write([]byte(name + "\t" + path + "\t" + status + "\n"))
			}
			return nil
		},
	}
}
