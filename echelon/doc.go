// Package echelon reduces a matrix to Row Echelon Form (REF) or Reduced Row
// Echelon Form (RREF) by Gaussian elimination.
//
// 🚀 What does it do?
//
//	For each pivot column the engine finds a non-zero pivot (swapping a
//	lower row up when needed), scales the pivot row so the pivot becomes 1,
//	and adds multiples of it to the other rows until the column is cleared:
//	  • REF  : only rows below the pivot are cleared
//	  • RREF : every other row is cleared, above and below
//
// ✨ Key features:
//   - in-place: the caller's matrix is mutated and returned in Result.Matrix
//   - rank-deficient input never fails; empty columns become
//     DegenerateColumn notices instead of printed warnings
//   - optional step trace of every elementary row operation (WithTrace)
//   - exact zero tests by default; WithZeroTolerance opts into an epsilon
//   - WithDiagonalPivots reproduces the classic diagonal-only walk
//
// ⚙️ Usage:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{
//	  {2, 4, 6, 18},
//	  {4, 5, 6, 24},
//	  {3, 1, -2, 4},
//	})
//	res, err := echelon.ToRREF(m, echelon.WithTrace())
//	if err != nil {
//	  // only contract violations end up here
//	}
//	fmt.Print(res.Matrix)   // [1, 0, 0, 4] [0, 1, 0, -2] [0, 0, 1, 3]
//	fmt.Println(res.Rank()) // 3
//
// Performance:
//
//   - Time:   O(min(R,C)·R·C) elementary updates
//   - Memory: O(1) beyond the matrix (plus the trace when enabled)
//
// The engine is synchronous and single-threaded; a matrix must not be shared
// across goroutines while it is being reduced.
package echelon
