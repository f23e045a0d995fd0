// SPDX-License-Identifier: MIT

// Package matrix: public interfaces over the grid.
// Matrix is the read/write element surface; RowMatrix adds the elementary
// row operations the elimination engine is built from. Errors and options
// live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// RowMatrix is a Matrix that supports the three elementary row operations.
// Every operation is synchronous, deterministic and leaves Rows()/Cols()
// unchanged.
type RowMatrix interface {
	Matrix

	// SwapRows exchanges rows i and j in place. i == j is a no-op.
	// Returns ErrOutOfRange on invalid indices.
	// Complexity: O(cols).
	SwapRows(i, j int) error

	// ScaleRow multiplies every entry of row i by scalar.
	// Returns ErrInvalidScalar when scalar == 0; the row is left untouched.
	// Complexity: O(cols).
	ScaleRow(i int, scalar float64) error

	// AddScaledRow replaces row target with target + scalar*source.
	// Returns ErrOutOfRange on invalid indices.
	// Complexity: O(cols).
	AddScaledRow(target, source int, scalar float64) error
}
