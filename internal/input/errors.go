// SPDX-License-Identifier: MIT

package input

import "errors"

var (
	// ErrEmptyMatrix indicates that no rows were supplied.
	ErrEmptyMatrix = errors.New("input: no valid matrix entered")

	// ErrEmptyRow indicates a row with no numbers in it.
	ErrEmptyRow = errors.New("input: row has no numbers")

	// ErrRaggedRows indicates rows of different lengths.
	ErrRaggedRows = errors.New("input: all rows must have the same number of elements")

	// ErrNotNumeric indicates a token that is not a number.
	ErrNotNumeric = errors.New("input: please enter numbers only")
)
