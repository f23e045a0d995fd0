// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/echelon/matrix"
)

// DoneKeyword ends interactive and text entry (case-insensitive).
const DoneKeyword = "done"

// commentPrefix marks a text line that is ignored.
const commentPrefix = "#"

// IsDone reports whether line is the end-of-entry keyword.
func IsDone(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), DoneKeyword)
}

// ParseRow splits line on whitespace and commas and parses every token as
// a float64.
//
// Errors:
//   - ErrEmptyRow when the line holds no tokens.
//   - ErrNotNumeric for the first token that does not parse.
//   - matrix.ErrNaNInf for NaN or ±Inf tokens.
func ParseRow(line string) ([]float64, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(fields) == 0 {
		return nil, ErrEmptyRow
	}

	row := make([]float64, len(fields))
	for k, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("ParseRow: %q: %w", f, ErrNotNumeric)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("ParseRow: %q: %w", f, matrix.ErrNaNInf)
		}
		row[k] = v
	}

	return row, nil
}

// Build validates a collected grid and copies it into a new Dense.
//
// Errors:
//   - ErrEmptyMatrix when rows is empty.
//   - ErrEmptyRow when any row is empty.
//   - ErrRaggedRows naming the first row (1-based) whose length differs.
//   - matrix.ErrNaNInf for non-finite entries.
func Build(rows [][]float64) (*matrix.Dense, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMatrix
	}
	want := len(rows[0])
	for i, r := range rows {
		if len(r) == 0 {
			return nil, fmt.Errorf("row %d: %w", i+1, ErrEmptyRow)
		}
		if len(r) != want {
			return nil, fmt.Errorf("row %d has %d elements, want %d: %w", i+1, len(r), want, ErrRaggedRows)
		}
	}

	return matrix.NewDenseFromRows(rows)
}

// ParseText reads one row per line from r until EOF or a "done" line.
// Blank lines and lines starting with '#' are skipped.
//
// Every bad line is reported, not only the first: the returned error is a
// *multierror.Error listing "line N: ..." entries, and errors.Is matches
// each wrapped sentinel.
func ParseText(r io.Reader) (*matrix.Dense, error) {
	var (
		rows [][]float64
		errs *multierror.Error
		n    int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		if IsDone(line) {
			break
		}
		row, err := ParseRow(line)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w", n, err))
			continue
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ParseText: %w", err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return Build(rows)
}

// IsInputError reports whether err stems from malformed user input rather
// than an I/O failure.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyMatrix) ||
		errors.Is(err, ErrEmptyRow) ||
		errors.Is(err, ErrRaggedRows) ||
		errors.Is(err, ErrNotNumeric) ||
		errors.Is(err, matrix.ErrNaNInf)
}
