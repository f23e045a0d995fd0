// SPDX-License-Identifier: MIT

// Package echelon defines reduction modes, pivots, degeneracy notices and
// the step trace returned with every reduction.
package echelon

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/echelon/matrix"
)

// Mode selects how far the reduction goes.
//
//   - REF  : eliminate below each pivot; the result is upper-triangular in
//     shape with leading ones.
//   - RREF : eliminate above and below each pivot; every pivot column ends
//     with a single non-zero entry.
type Mode int

const (
	// REF reduces to Row Echelon Form.
	REF Mode = iota

	// RREF reduces to Reduced Row Echelon Form.
	RREF
)

const (
	opREF  = "ToREF"
	opRREF = "ToRREF"
)

// String returns "REF" or "RREF".
func (m Mode) String() string {
	switch m {
	case REF:
		return "REF"
	case RREF:
		return "RREF"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "ref"/"rref" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ref":
		return REF, nil
	case "rref":
		return RREF, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}
}

// opTag is the error-wrapping tag for the mode.
func (m Mode) opTag() string {
	if m == RREF {
		return opRREF
	}

	return opREF
}

// Pivot records one accepted pivot position.
// Value is the entry found at (Row, Col) before the row was normalized.
type Pivot struct {
	Row   int
	Col   int
	Value float64
}

// DegenerateColumn records a column that contributed no pivot: every entry
// at or below Row was zero. It is informational, never an error.
type DegenerateColumn struct {
	Col int
	Row int
}

// String renders the notice in 0-based coordinates.
func (d DegenerateColumn) String() string {
	return fmt.Sprintf("column %d contains only zeros at or below row %d; skipping pivot", d.Col, d.Row)
}

// Op names an elementary row operation.
type Op int

const (
	// OpSwap exchanges two rows.
	OpSwap Op = iota
	// OpScale multiplies one row by a non-zero scalar.
	OpScale
	// OpAddScaled adds a multiple of the source row to the target row.
	OpAddScaled
)

// String returns a short operation name.
func (o Op) String() string {
	switch o {
	case OpSwap:
		return "swap"
	case OpScale:
		return "scale"
	case OpAddScaled:
		return "add"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Step is one traced elementary row operation. Rows are 0-based.
// Source is unused for OpScale; Scalar is unused for OpSwap.
type Step struct {
	Op     Op
	Target int
	Source int
	Scalar float64
}

// String renders the step in textbook notation with 1-based row labels,
// e.g. "R1 <-> R2", "R1 <- 0.5 * R1", "R2 <- R2 + (-4) * R1".
func (s Step) String() string {
	switch s.Op {
	case OpSwap:
		return fmt.Sprintf("R%d <-> R%d", s.Target+1, s.Source+1)
	case OpScale:
		return fmt.Sprintf("R%d <- %s * R%d", s.Target+1, formatScalar(s.Scalar), s.Target+1)
	case OpAddScaled:
		return fmt.Sprintf("R%d <- R%d + %s * R%d", s.Target+1, s.Target+1, formatScalar(s.Scalar), s.Source+1)
	default:
		return s.Op.String()
	}
}

// formatScalar parenthesizes negative scalars so "+ (-4)" reads unambiguously.
func formatScalar(v float64) string {
	if v < 0 {
		return fmt.Sprintf("(%g)", v)
	}

	return fmt.Sprintf("%g", v)
}

// Result is the outcome of one reduction run.
//
// Fields:
//   - Matrix     : the reduced matrix (the same instance that was passed in).
//   - Mode       : REF or RREF.
//   - Pivots     : accepted pivots in the order they were processed.
//   - Degenerate : columns skipped because no non-zero pivot existed.
//   - Steps      : elementary operations, only populated under WithTrace.
type Result struct {
	Matrix     matrix.RowMatrix
	Mode       Mode
	Pivots     []Pivot
	Degenerate []DegenerateColumn
	Steps      []Step
}

// Rank returns the number of pivots found, i.e. the rank of the input.
func (r *Result) Rank() int { return len(r.Pivots) }

// PivotColumns lists the column of each pivot in processing order.
func (r *Result) PivotColumns() []int {
	cols := make([]int, len(r.Pivots))
	for i, p := range r.Pivots {
		cols[i] = p.Col
	}

	return cols
}
