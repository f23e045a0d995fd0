// SPDX-License-Identifier: MIT

// Package render prints matrices, degeneracy notices and row-operation
// traces for humans. It only reads the matrix; nothing here mutates it.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/katalvlaran/echelon/echelon"
	"github.com/katalvlaran/echelon/matrix"
)

const (
	cellFormat = "%6.2f"
	cellSep    = " | "
	negZero    = "-0.00"
)

// Options selects the report layout.
type Options struct {
	Table bool // box-drawn table instead of the plain grid
	Steps bool // list the traced row operations
}

// Heading announces a reduction, e.g. "Converting to Row Echelon Form...".
func Heading(mode echelon.Mode) string {
	if mode == echelon.RREF {
		return "Converting to Reduced Row Echelon Form..."
	}

	return "Converting to Row Echelon Form..."
}

// FormatValue renders one entry with two decimals in a six-wide field.
// Values that round to zero print without a sign.
func FormatValue(v float64) string {
	s := fmt.Sprintf(cellFormat, v)
	if strings.TrimSpace(s) == negZero {
		return fmt.Sprintf(cellFormat, 0.0)
	}

	return s
}

// Plain writes one line per row, entries joined by " | ".
func Plain(w io.Writer, m matrix.Matrix) error {
	cells, err := formatCells(m)
	if err != nil {
		return err
	}
	pw := &printer{w: w}
	for _, row := range cells {
		pw.printf("%s\n", strings.Join(row, cellSep))
	}

	return pw.err
}

// Table writes m as a bordered table with 1-based row and column labels.
func Table(w io.Writer, m matrix.Matrix) error {
	cells, err := formatCells(m)
	if err != nil {
		return err
	}

	header := make([]string, m.Cols()+1)
	for j := 0; j < m.Cols(); j++ {
		header[j+1] = fmt.Sprintf("C%d", j+1)
	}
	rows := make([][]string, len(cells))
	for i, row := range cells {
		rows[i] = append([]string{fmt.Sprintf("R%d", i+1)}, trimAll(row)...)
	}

	// Render into a buffer so a failing w surfaces as one write error.
	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Borders: tw.Border{Left: tw.On, Right: tw.On, Top: tw.On, Bottom: tw.On},
		})),
	)
	table.Header(header)
	if err = table.Bulk(rows); err != nil {
		return fmt.Errorf("Table: %w", err)
	}
	if err = table.Render(); err != nil {
		return fmt.Errorf("Table: %w", err)
	}
	_, err = w.Write(buf.Bytes())

	return err
}

// Notices writes one warning line per degenerate column.
func Notices(w io.Writer, degenerate []echelon.DegenerateColumn) error {
	pw := &printer{w: w}
	for _, d := range degenerate {
		pw.printf(" Warning: Column %d contains only zeros. Skipping pivot.\n", d.Col)
	}

	return pw.err
}

// Steps writes the numbered row-operation trace.
func Steps(w io.Writer, steps []echelon.Step) error {
	pw := &printer{w: w}
	if len(steps) == 0 {
		pw.printf("  (no row operations)\n")

		return pw.err
	}
	for i, s := range steps {
		pw.printf("%3d. %s\n", i+1, s)
	}

	return pw.err
}

// Report writes the full outcome of a reduction: notices, the optional
// trace, then the matrix under a "Your Matrix:" caption.
func Report(w io.Writer, res *echelon.Result, o Options) error {
	if err := Notices(w, res.Degenerate); err != nil {
		return err
	}
	pw := &printer{w: w}
	if o.Steps {
		pw.printf("\nSteps:\n")
		if pw.err != nil {
			return pw.err
		}
		if err := Steps(w, res.Steps); err != nil {
			return err
		}
	}
	pw.printf("\nYour Matrix:\n")
	if pw.err != nil {
		return pw.err
	}

	var err error
	if o.Table {
		err = Table(w, res.Matrix)
	} else {
		err = Plain(w, res.Matrix)
	}
	if err != nil {
		return err
	}
	pw.printf("\n")

	return pw.err
}

// Inline renders m on one line, e.g. "[[1, 2], [3, 4]]". Entries use %g
// and negative zero prints as 0.
func Inline(m matrix.Matrix) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < m.Rows(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("[")
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return "", err
			}
			if v == 0 {
				v = 0
			}
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString("]")
	}
	b.WriteString("]")

	return b.String(), nil
}

func formatCells(m matrix.Matrix) ([][]string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	out := make([][]string, m.Rows())
	for i := range out {
		out[i] = make([]string, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out[i][j] = FormatValue(v)
		}
	}

	return out, nil
}

func trimAll(row []string) []string {
	out := make([]string, len(row))
	for i, s := range row {
		out[i] = strings.TrimSpace(s)
	}

	return out
}

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
