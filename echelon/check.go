// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"
	"math"

	"github.com/katalvlaran/echelon/matrix"
)

const (
	opIsREF  = "IsREF"
	opIsRREF = "IsRREF"
)

// IsREF reports whether m is in Row Echelon Form within tol:
//   - every non-zero row starts with a leading 1,
//   - each leading 1 lies strictly right of the one in the row above,
//   - all-zero rows sit at the bottom.
//
// Entries with |x| <= tol count as zero; a leading entry counts as 1 when
// |x-1| <= tol. Complexity: O(R·C).
func IsREF(m matrix.Matrix, tol float64) (bool, error) {
	leads, err := leadingColumns(opIsREF, m, tol)
	if err != nil {
		return false, err
	}

	return leads != nil, nil
}

// IsRREF reports whether m is in Reduced Row Echelon Form within tol: it is
// in REF and every leading 1 is the only non-zero entry of its column.
// Complexity: O(R·C).
func IsRREF(m matrix.Matrix, tol float64) (bool, error) {
	leads, err := leadingColumns(opIsRREF, m, tol)
	if err != nil || leads == nil {
		return false, err
	}

	var v float64
	for i, col := range leads {
		if col < 0 {
			break
		}
		for j := 0; j < m.Rows(); j++ {
			if j == i {
				continue
			}
			if v, err = m.At(j, col); err != nil {
				return false, fmt.Errorf("%s: %w", opIsRREF, err)
			}
			if math.Abs(v) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}

// leadingColumns returns, per row, the column of its leading 1 (or -1 for a
// zero row), or nil when m violates the REF shape.
func leadingColumns(tag string, m matrix.Matrix, tol float64) ([]int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	leads := make([]int, m.Rows())
	prev := -1
	seenZeroRow := false
	var (
		v   float64
		err error
	)
	for i := 0; i < m.Rows(); i++ {
		leads[i] = -1
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", tag, err)
			}
			if math.Abs(v) > tol {
				leads[i] = j
				break
			}
		}
		if leads[i] < 0 {
			seenZeroRow = true
			continue
		}
		if seenZeroRow || leads[i] <= prev || math.Abs(v-1) > tol {
			return nil, nil
		}
		prev = leads[i]
	}

	return leads, nil
}
