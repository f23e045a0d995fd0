// Package echelon is a small teaching toolkit for Gaussian elimination:
// it reduces matrices to Row Echelon Form (REF) and Reduced Row Echelon
// Form (RREF) and explains each step.
//
// 🚀 What is inside?
//
//	matrix/            row-major Dense storage with the three elementary row
//	                    operations (swap, scale, add a multiple)
//	echelon/           the elimination engine: pivots, degenerate columns,
//	                    step traces, REF/RREF checkers
//	internal/input     text, YAML and JSON matrix parsing and validation
//	internal/render    grids, tables, warnings and step lists
//	internal/tutor     definitions, worked examples and fun facts
//	internal/session   the interactive Matrix Learning Hub
//	internal/cli       cobra commands behind cmd/echelon
//
// ✨ Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{
//		{2, 4, 6, 18},
//		{4, 5, 6, 24},
//		{3, 1, -2, 4},
//	})
//	res, _ := echelon.ToRREF(m)
//	fmt.Print(m)          // [1, 0, 0, 4] [0, 1, 0, -2] [0, 0, 1, 3]
//	fmt.Println(res.Rank()) // 3
//
// From the command line:
//
//	echelon learn
//	echelon rref --steps system.txt
//
//	go install github.com/katalvlaran/echelon/cmd/echelon@latest
package echelon
