// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations on Dense.
//
// Purpose:
//   - Provide the three primitive, auditable mutations used by Gaussian
//     elimination: swap, scale, add-multiple.
//   - Never interpret why an operation is requested; only enforce its contract.
//
// Determinism:
//   - Fixed left-to-right column order; no allocation.

package matrix

// ZeroScalar is the sentinel rejected by ScaleRow.
const ZeroScalar = 0.0

// SwapRows exchanges rows i and j in place.
// Implementation:
//   - Stage 1: bounds-check both indices.
//   - Stage 2: i == j is a no-op; otherwise swap element-wise on the flat buffer.
//
// Errors:
//   - ErrOutOfRange when either index is invalid.
//
// Complexity:
//   - Time O(cols), Space O(1).
func (m *Dense) SwapRows(i, j int) error {
	if err := m.checkRow(i); err != nil {
		return denseErrorf(ctxSwap, i, j, err)
	}
	if err := m.checkRow(j); err != nil {
		return denseErrorf(ctxSwap, i, j, err)
	}
	if i == j {
		return nil
	}

	rowI := m.data[i*m.c : (i+1)*m.c]
	rowJ := m.data[j*m.c : (j+1)*m.c]
	for k := 0; k < m.c; k++ {
		rowI[k], rowJ[k] = rowJ[k], rowI[k]
	}

	return nil
}

// ScaleRow multiplies every entry of row i by scalar.
// Implementation:
//   - Stage 1: bounds-check i.
//   - Stage 2: reject scalar == 0 before touching the row.
//   - Stage 3: multiply in place.
//
// Behavior highlights:
//   - A rejected call leaves the row bit-for-bit unchanged.
//   - Sign and magnitude are otherwise unconstrained.
//
// Errors:
//   - ErrOutOfRange, ErrInvalidScalar.
//
// Complexity:
//   - Time O(cols), Space O(1).
func (m *Dense) ScaleRow(i int, scalar float64) error {
	if err := m.checkRow(i); err != nil {
		return denseErrorf(ctxScale, i, 0, err)
	}
	if scalar == ZeroScalar {
		return denseErrorf(ctxScale, i, 0, ErrInvalidScalar)
	}

	row := m.data[i*m.c : (i+1)*m.c]
	for k := range row {
		row[k] *= scalar
	}

	return nil
}

// AddScaledRow replaces row target with target + scalar*source, element-wise
// over exactly Cols() columns.
// Implementation:
//   - Stage 1: bounds-check target and source.
//   - Stage 2: accumulate into target in place.
//
// Notes:
//   - target == source is allowed and yields (1+scalar)*row; the elimination
//     engine never requests it.
//
// Errors:
//   - ErrOutOfRange.
//
// Complexity:
//   - Time O(cols), Space O(1).
func (m *Dense) AddScaledRow(target, source int, scalar float64) error {
	if err := m.checkRow(target); err != nil {
		return denseErrorf(ctxAddScaled, target, source, err)
	}
	if err := m.checkRow(source); err != nil {
		return denseErrorf(ctxAddScaled, target, source, err)
	}

	dst := m.data[target*m.c : (target+1)*m.c]
	src := m.data[source*m.c : (source+1)*m.c]
	for k := range dst {
		dst[k] += scalar * src[k]
	}

	return nil
}
