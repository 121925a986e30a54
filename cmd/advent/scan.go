package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/advent/pkgs/input"
	"github.com/aledsdavies/advent/pkgs/scanner"
)

func (a *app) scanCmd() *cobra.Command {
	var (
		conditionals bool
		trace        bool
	)

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Print every mul(a,b) found in a file and their sum",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := input.DefaultFile
			if len(args) == 1 {
				path = args[0]
			}
			data, err := input.Load(path)
			if err != nil {
				return err
			}

			opts := []scanner.Opt{scanner.WithLogger(a.logger)}
			if conditionals {
				opts = append(opts, scanner.WithConditionals())
			}
			if trace {
				opts = append(opts, scanner.WithTrace())
			}
			report := scanner.New(opts...).Analyze(data)

			a.printReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&conditionals, "conditionals", false, "Honor do() and don't() toggles")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print every state transition")
	return cmd
}

func (a *app) printReport(cmd *cobra.Command, report scanner.Report) {
	out := cmd.OutOrStdout()

	for _, ev := range report.Trace {
		consumed := ""
		if !ev.Consumed {
			consumed = Colorize(" (re-examine)", ColorGray, a.useColor)
		}
		_, _ = fmt.Fprintf(out, "%6d %-6s %s -> %s%s\n",
			ev.Offset, strconv.QuoteRune(rune(ev.Char)), ev.From, ev.To, consumed)
	}

	for _, m := range report.Matches {
		_, _ = fmt.Fprintf(out, "%6d  mul(%d,%d) = %d\n", m.Offset, m.A, m.B, m.Product())
	}

	st := report.Stats
	_, _ = fmt.Fprintf(out, "%s %d\n", Colorize("sum:", ColorGreen, a.useColor), scanner.Sum(report.Matches))
	_, _ = fmt.Fprintf(out, "%s attempts=%d emitted=%d suppressed=%d toggles=%d rejected=%d\n",
		Colorize("stats:", ColorGray, a.useColor),
		st.Attempts, st.Emitted, st.Suppressed, st.Toggles, st.Rejected)
}
