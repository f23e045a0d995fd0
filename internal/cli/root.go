// SPDX-License-Identifier: MIT

// Package cli wires the echelon commands with cobra.
package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/echelon/echelon"
	"github.com/katalvlaran/echelon/internal/logging"
	"github.com/katalvlaran/echelon/internal/render"
)

// ErrInvalidTolerance indicates a negative or non-finite --tolerance.
var ErrInvalidTolerance = errors.New("cli: tolerance must be finite and >= 0")

// Env is everything a command touches outside the process.
type Env struct {
	Fs     afero.Fs
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// OSEnv binds the real filesystem and standard streams.
func OSEnv() Env {
	return Env{Fs: afero.NewOsFs(), In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}
}

// flags are the persistent flags shared by every subcommand.
type flags struct {
	steps     bool
	table     bool
	diagonal  bool
	tolerance float64
	logLevel  string
}

// engineOptions translates the flags into echelon options.
func (f *flags) engineOptions(logger hclog.Logger) ([]echelon.Option, error) {
	if f.tolerance < 0 || math.IsNaN(f.tolerance) || math.IsInf(f.tolerance, 0) {
		return nil, fmt.Errorf("%v: %w", f.tolerance, ErrInvalidTolerance)
	}
	opts := []echelon.Option{echelon.WithLogger(logger.Named("engine"))}
	if f.tolerance > 0 {
		opts = append(opts, echelon.WithZeroTolerance(f.tolerance))
	}
	if f.diagonal {
		opts = append(opts, echelon.WithDiagonalPivots())
	}
	if f.steps {
		opts = append(opts, echelon.WithTrace())
	}

	return opts, nil
}

func (f *flags) renderOptions() render.Options {
	return render.Options{Table: f.table, Steps: f.steps}
}

// NewRootCommand builds the echelon command tree bound to env.
func NewRootCommand(env Env) *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "echelon",
		Short: "Learn and perform Gaussian elimination",
		Long: `echelon reduces matrices to Row Echelon Form (REF) or Reduced Row
Echelon Form (RREF) and explains what it does along the way.

Start the interactive learning hub with "echelon learn", or reduce a matrix
file directly with "echelon ref FILE" or "echelon rref FILE".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.SetIn(env.In)
	root.SetOut(env.Out)
	root.SetErr(env.ErrOut)

	pf := root.PersistentFlags()
	pf.BoolVar(&f.steps, "steps", false, "Print every elementary row operation")
	pf.BoolVar(&f.table, "table", false, "Render matrices as bordered tables")
	pf.BoolVar(&f.diagonal, "diagonal", false, "Pivot strictly on the diagonal (i,i) instead of tracking the pivot row")
	pf.Float64Var(&f.tolerance, "tolerance", echelon.DefaultZeroTolerance, "Treat entries with |x| <= tolerance as zero when choosing pivots")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, off); defaults to $"+logging.EnvLevel+" or "+logging.DefaultLevel)

	root.AddCommand(
		newLearnCommand(env, f),
		newReduceCommand(env, f, echelon.REF),
		newReduceCommand(env, f, echelon.RREF),
		newDefinitionsCommand(env),
		newExamplesCommand(env, f),
	)

	return root
}

// Execute runs the command tree against the real process environment.
func Execute() error {
	return NewRootCommand(OSEnv()).Execute()
}

func newLogger(env Env, f *flags) (hclog.Logger, error) {
	return logging.New(env.ErrOut, f.logLevel)
}
