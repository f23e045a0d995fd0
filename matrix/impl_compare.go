// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const (
	opEqual    = "Equal"
	opAllClose = "AllClose"
)

// Equal reports whether a and b have the same shape and bit-identical
// elements. Complexity: O(r*c).
func Equal(a, b Matrix) (bool, error) {
	return compare(opEqual, a, b, 0)
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most the configured epsilon (DefaultEpsilon unless
// overridden with WithEpsilon). Complexity: O(r*c).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return compare(opAllClose, a, b, o.eps)
}

func compare(tag string, a, b Matrix, tol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, fmt.Errorf("%s: %w", tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, fmt.Errorf("%s: %w", tag, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}

	// Fast-path on two *Dense: walk the flat buffers.
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for k := range da.data {
			if math.Abs(da.data[k]-db.data[k]) > tol {
				return false, nil
			}
		}

		return true, nil
	}

	var (
		i, j   int
		va, vb float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if va, err = a.At(i, j); err != nil {
				return false, fmt.Errorf("%s: %w", tag, err)
			}
			if vb, err = b.At(i, j); err != nil {
				return false, fmt.Errorf("%s: %w", tag, err)
			}
			if math.Abs(va-vb) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}
