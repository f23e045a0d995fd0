// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/echelon/echelon"
	"github.com/katalvlaran/echelon/internal/input"
	"github.com/katalvlaran/echelon/internal/render"
	"github.com/katalvlaran/echelon/internal/session"
	"github.com/katalvlaran/echelon/internal/tutor"
	"github.com/katalvlaran/echelon/matrix"
)

// stdinArg selects standard input explicitly.
const stdinArg = "-"

func newLearnCommand(env Env, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "learn",
		Short: "Start the interactive Matrix Learning Hub",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(env, f)
			if err != nil {
				return err
			}
			opts, err := f.engineOptions(logger)
			if err != nil {
				return err
			}

			return session.New(env.In, env.Out,
				session.WithLogger(logger),
				session.WithSteps(f.steps),
				session.WithTable(f.table),
				session.WithEngineOptions(opts...),
			).Run()
		},
	}
}

func newReduceCommand(env Env, f *flags, mode echelon.Mode) *cobra.Command {
	name := strings.ToLower(mode.String())

	return &cobra.Command{
		Use:   name + " [FILE]",
		Short: fmt.Sprintf("Reduce a matrix to %s", mode),
		Long: fmt.Sprintf(`Reduce a matrix to %s and print the result.

FILE holds one row per line (numbers separated by spaces or commas), or a
YAML/JSON list of rows when it ends in .yaml, .yml or .json. Without FILE,
or with "-", rows are read from standard input until EOF or a "done" line.

Example:
  echelon %s --steps system.txt`, mode, name),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(env, f)
			if err != nil {
				return err
			}
			opts, err := f.engineOptions(logger)
			if err != nil {
				return err
			}

			var m *matrix.Dense
			if len(args) == 0 || args[0] == stdinArg {
				m, err = input.ParseText(env.In)
			} else {
				m, err = input.LoadFile(env.Fs, args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read matrix: %w", err)
			}
			logger.Debug("matrix loaded", "rows", m.Rows(), "cols", m.Cols())

			if _, err = fmt.Fprintf(env.Out, "%s\n\n", render.Heading(mode)); err != nil {
				return err
			}
			res, err := echelon.Reduce(m, mode, opts...)
			if err != nil {
				return err
			}

			return render.Report(env.Out, res, f.renderOptions())
		},
	}
}

func newDefinitionsCommand(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "definitions",
		Short: "Explain REF, RREF and related terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tutor.WriteDefinitions(env.Out)
		},
	}
}

func newExamplesCommand(env Env, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show worked REF and RREF examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tutor.WriteExamples(env.Out, f.steps)
		},
	}
}
