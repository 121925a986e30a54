package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/advent/pkgs/answers"
	"github.com/aledsdavies/advent/pkgs/errors"
	"github.com/aledsdavies/advent/pkgs/input"
	"github.com/aledsdavies/advent/pkgs/puzzle"
)

func (a *app) runCmd() *cobra.Command {
	var (
		inputPath string
		check     bool
		record    bool
	)

	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the named days, or every day with an input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath != "" && len(args) != 1 {
				return &CLIError{
					Message: "--input needs exactly one day",
					Hint:    "advent run 3 --input memory.txt",
					Code:    ExitFailure,
				}
			}
			return a.run(cmd, args, inputPath, check, record)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file for a single day (- for stdin)")
	cmd.Flags().BoolVar(&check, "check", false, "Compare answers with the answer store")
	cmd.Flags().BoolVar(&record, "record", false, "Store answers in the answer store")
	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string, inputPath string, check, record bool) error {
	explicit := len(args) > 0
	names := args
	if !explicit {
		names = a.registry.Names()
	}

	inputs := make(map[string][]byte, len(names))
	var toRun []string
	for _, name := range names {
		canonical := puzzle.Canonical(name)
		if _, err := a.registry.Lookup(canonical); err != nil {
			return err
		}

		path := inputPath
		if path == "" {
			path = a.cfg.InputPath(canonical)
		}
		data, err := input.Load(path)
		if err != nil {
			if !explicit && errors.IsErrorType(err, errors.ErrFileNotFound) {
				a.logger.Info("skipping puzzle without input", "puzzle", canonical, "path", path)
				continue
			}
			return err
		}
		a.logger.Debug("loaded input", "puzzle", canonical, "path", path, "bytes", len(data))
		inputs[canonical] = data
		toRun = append(toRun, canonical)
	}

	var store *answers.Store
	if check || record {
		var err error
		if store, err = answers.Load(a.cfg.AnswersFile); err != nil {
			return err
		}
	}

	results := a.registry.RunAll(cmd.Context(), toRun, inputs)

	out := cmd.OutOrStdout()
	var failed, mismatched []string
	for _, res := range results {
		if res.Err != nil {
			_, _ = fmt.Fprintf(out, "%s  %s\n", Colorize(res.Name, ColorCyan, a.useColor), Colorize(res.Err.Error(), ColorRed, a.useColor))
			failed = append(failed, res.Name)
			continue
		}

		line := fmt.Sprintf("%s  %s", Colorize(res.Name, ColorCyan, a.useColor), res.Answer)
		if check {
			verdict := store.Check(res.Name, inputs[res.Name], res.Answer)
			color := ColorGray
			switch verdict {
			case answers.Match:
				color = ColorGreen
			case answers.Mismatch:
				color = ColorRed
				mismatched = append(mismatched, res.Name)
			}
			line += "  " + Colorize(verdict.String(), color, a.useColor)
		}
		_, _ = fmt.Fprintln(out, line)

		if record {
			store.Record(res.Name, inputs[res.Name], res.Answer)
		}
	}

	if record {
		if err := store.Save(a.cfg.AnswersFile); err != nil {
			return err
		}
		a.logger.Debug("recorded answers", "path", a.cfg.AnswersFile, "entries", store.Len())
	}

	if len(failed) > 0 {
		return &CLIError{
			Message: fmt.Sprintf("%d puzzle(s) failed: %s", len(failed), strings.Join(failed, ", ")),
			Code:    ExitFailure,
		}
	}
	if len(mismatched) > 0 {
		return &CLIError{
			Message: fmt.Sprintf("answer changed for %s", strings.Join(mismatched, ", ")),
			Hint:    "re-run with --record once the new answer is confirmed",
			Code:    ExitMismatch,
		}
	}
	return nil
}
