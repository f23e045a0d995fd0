// SPDX-License-Identifier: MIT

// Package echelon: functional configuration for a reduction run.
//
// Defaults:
//   - exact zero tests (DefaultZeroTolerance == 0), matching the classic
//     `pivot == 0` check bit for bit;
//   - tracked pivot row (a skipped column does not consume a row);
//   - no step trace;
//   - a null logger, so the engine performs no I/O unless asked to.
package echelon

import (
	"math"

	"github.com/hashicorp/go-hclog"
)

// DefaultZeroTolerance is the magnitude at or below which an entry counts as
// zero during pivot search. Zero means exact comparison.
const DefaultZeroTolerance = 0.0

const panicZeroToleranceInvalid = "echelon: WithZeroTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved configuration of one run. Fields are unexported;
// public entry points accept `...Option`.
type Options struct {
	logger   hclog.Logger
	trace    bool
	zeroTol  float64
	diagonal bool
}

// WithLogger routes engine diagnostics (degenerate columns at Info, pivots at
// Debug, row operations at Trace) to l. A nil logger restores the default.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = hclog.NewNullLogger()
		}
		o.logger = l
	}
}

// WithTrace records every elementary row operation in Result.Steps.
func WithTrace() Option {
	return func(o *Options) { o.trace = true }
}

// WithZeroTolerance treats |x| <= tol as zero when searching for a pivot.
// This changes which columns are reported degenerate; leave it unset to keep
// exact comparisons. Panics when tol is negative, NaN or Inf.
func WithZeroTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicZeroToleranceInvalid)
	}

	return func(o *Options) { o.zeroTol = tol }
}

// WithDiagonalPivots walks pivots strictly along the diagonal
// (0,0), (1,1), ... up to min(rows, cols): a degenerate column also consumes
// its row slot. This reproduces the classroom algorithm exactly, including
// its blind spots on rank-deficient input (for [[0,1],[0,0]] it finds no pivot).
func WithDiagonalPivots() Option {
	return func(o *Options) { o.diagonal = true }
}

// gatherOptions applies user-provided Option setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		logger:  hclog.NewNullLogger(),
		zeroTol: DefaultZeroTolerance,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
