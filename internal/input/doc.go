// SPDX-License-Identifier: MIT

// Package input turns user text into a validated *matrix.Dense.
//
// Three sources are supported:
//   - interactive rows, one line at a time (ParseRow, IsDone, Build),
//   - plain text streams of whitespace or comma separated numbers (ParseText),
//   - YAML or JSON files holding a list of rows (ParseYAML, LoadFile).
//
// Every grid that leaves this package is non-empty, rectangular and finite,
// so the elimination engine never sees malformed input.
package input
