// Package matrix provides the mutable numeric grid used by the echelon
// reduction engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix stored in one flat buffer with
//     O(1) bounds-checked At/Set.
//   - The three elementary row operations (SwapRows, ScaleRow,
//     AddScaledRow) behind the RowMatrix interface.
//   - Validators and a small numeric policy (finite-only ingestion).
//
// Row operations never interpret why they are requested: they mutate the
// grid, keep its shape, and report contract violations through the sentinel
// errors in errors.go.
//
// Matrices here are meant for small, hand-entered systems; nothing in this
// package is tuned for large inputs.
package matrix
