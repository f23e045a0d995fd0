// SPDX-License-Identifier: MIT

package echelon

import (
	"math"

	"github.com/katalvlaran/echelon/matrix"
)

// Reduce brings m to the requested echelon form in place.
//
// Algorithm Outline (tracked pivot row, the default):
//  1. row := 0.
//  2. For col = 0 .. Cols-1 while row < Rows:
//     a. If m[row][col] is zero, swap up the first lower row with a
//     non-zero entry in col. If none exists, record a DegenerateColumn
//     and move to the next column WITHOUT advancing row.
//     b. Scale the pivot row by 1/pivot so the pivot becomes 1.
//     c. Clear col in the target rows: rows below (REF) or every other
//     row (RREF), using AddScaledRow(target, row, -m[target][col]).
//     d. row++.
//
// Under WithDiagonalPivots the pivot is always (i, i) for
// i = 0 .. min(Rows, Cols)-1 and a degenerate column consumes row i too.
//
// Inputs:
//   - m: the matrix to reduce; it is mutated and returned in Result.Matrix.
//   - mode: REF or RREF.
//
// Returns:
//   - *Result with pivots, degeneracy notices and (optionally) the trace.
//
// Errors:
//   - ErrUnknownMode for a mode outside {REF, RREF}.
//   - matrix.ErrNilMatrix for a nil matrix.
//   - Row-operation errors (e.g. matrix.ErrInvalidScalar) wrapped with the
//     mode tag. These signal a broken RowMatrix implementation; the engine
//     never asks for a zero scalar or an invalid index itself.
//
// Complexity:
//
//	Time O(min(R,C)·R·C), Space O(1) beyond the optional trace.
func Reduce(m matrix.RowMatrix, mode Mode, opts ...Option) (*Result, error) {
	if mode != REF && mode != RREF {
		return nil, ErrUnknownMode
	}
	tag := mode.opTag()
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, engineErrorf(tag, err)
	}

	e := &engine{
		m:    m,
		mode: mode,
		o:    gatherOptions(opts...),
		res:  &Result{Matrix: m, Mode: mode},
	}
	e.o.logger.Debug("reduction started", "mode", mode, "rows", m.Rows(), "cols", m.Cols())

	var err error
	if e.o.diagonal {
		err = e.runDiagonal()
	} else {
		err = e.runTracked()
	}
	if err != nil {
		return nil, engineErrorf(tag, err)
	}
	e.o.logger.Debug("reduction finished", "mode", mode, "rank", e.res.Rank(), "degenerate", len(e.res.Degenerate))

	return e.res, nil
}

// ToREF reduces m to Row Echelon Form in place.
func ToREF(m matrix.RowMatrix, opts ...Option) (*Result, error) {
	return Reduce(m, REF, opts...)
}

// ToRREF reduces m to Reduced Row Echelon Form in place.
func ToRREF(m matrix.RowMatrix, opts ...Option) (*Result, error) {
	return Reduce(m, RREF, opts...)
}

// engine carries the state of a single run.
type engine struct {
	m    matrix.RowMatrix
	mode Mode
	o    Options
	res  *Result
}

func (e *engine) runTracked() error {
	rows, cols := e.m.Rows(), e.m.Cols()
	row := 0
	for col := 0; col < cols && row < rows; col++ {
		found, err := e.selectPivot(row, col)
		if err != nil {
			return err
		}
		if !found {
			e.skip(row, col)
			continue
		}
		if err = e.eliminate(row, col); err != nil {
			return err
		}
		row++
	}

	return nil
}

func (e *engine) runDiagonal() error {
	n := min(e.m.Rows(), e.m.Cols())
	for i := 0; i < n; i++ {
		found, err := e.selectPivot(i, i)
		if err != nil {
			return err
		}
		if !found {
			e.skip(i, i)
			continue
		}
		if err = e.eliminate(i, i); err != nil {
			return err
		}
	}

	return nil
}

// selectPivot makes m[row][col] non-zero, swapping in the first lower row
// that has a non-zero entry in col. It reports false when no such row exists.
func (e *engine) selectPivot(row, col int) (bool, error) {
	v, err := e.m.At(row, col)
	if err != nil {
		return false, err
	}
	if !e.isZero(v) {
		return true, nil
	}
	for j := row + 1; j < e.m.Rows(); j++ {
		if v, err = e.m.At(j, col); err != nil {
			return false, err
		}
		if e.isZero(v) {
			continue
		}
		if err = e.m.SwapRows(row, j); err != nil {
			return false, err
		}
		e.record(Step{Op: OpSwap, Target: row, Source: j})

		return true, nil
	}

	return false, nil
}

// eliminate normalizes the pivot at (row, col) and clears col in the target rows.
func (e *engine) eliminate(row, col int) error {
	p, err := e.m.At(row, col)
	if err != nil {
		return err
	}
	scale := 1 / p
	if err = e.m.ScaleRow(row, scale); err != nil {
		return err
	}
	e.record(Step{Op: OpScale, Target: row, Scalar: scale})

	first := row + 1
	if e.mode == RREF {
		first = 0
	}
	var v float64
	for j := first; j < e.m.Rows(); j++ {
		if j == row {
			continue
		}
		if v, err = e.m.At(j, col); err != nil {
			return err
		}
		// Nothing to clear; skipping keeps the trace to effective operations.
		if v == 0 {
			continue
		}
		if err = e.m.AddScaledRow(j, row, -v); err != nil {
			return err
		}
		e.record(Step{Op: OpAddScaled, Target: j, Source: row, Scalar: -v})
	}

	e.res.Pivots = append(e.res.Pivots, Pivot{Row: row, Col: col, Value: p})
	e.o.logger.Debug("pivot accepted", "row", row, "col", col, "value", p)

	return nil
}

// skip records a degenerate column.
func (e *engine) skip(row, col int) {
	e.res.Degenerate = append(e.res.Degenerate, DegenerateColumn{Col: col, Row: row})
	e.o.logger.Info("column contains only zeros; skipping pivot", "col", col, "row", row)
}

// record appends s to the trace when tracing is enabled.
func (e *engine) record(s Step) {
	e.o.logger.Trace("row operation", "step", s.String())
	if e.o.trace {
		e.res.Steps = append(e.res.Steps, s)
	}
}

// isZero applies the pivot zero test. With the default tolerance of 0 this
// is exactly v == 0.
func (e *engine) isZero(v float64) bool {
	return math.Abs(v) <= e.o.zeroTol
}
