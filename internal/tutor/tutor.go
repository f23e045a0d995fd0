// SPDX-License-Identifier: MIT

// Package tutor holds the teaching content of the learning hub: term
// definitions, worked examples and fun facts. Worked examples are reduced
// by the elimination engine each time they are shown, so the printed
// answers always match what the engine does.
package tutor

import (
	"fmt"
	"io"

	"github.com/katalvlaran/echelon/echelon"
	"github.com/katalvlaran/echelon/internal/render"
	"github.com/katalvlaran/echelon/matrix"
)

// Definition is one glossary entry.
type Definition struct {
	Term string
	Text string
}

// Definitions lists the glossary shown by the hub, most important first.
var Definitions = []Definition{
	{
		Term: "Row Echelon Form (REF)",
		Text: "A matrix form where each leading coefficient is 1 and below it are zeros.",
	},
	{
		Term: "Reduced Row Echelon Form (RREF)",
		Text: "Like REF, but each leading coefficient is the only nonzero entry in its column.",
	},
	{
		Term: "Pivot",
		Text: "The entry chosen in a column to become a leading 1; every other entry below it (or, for RREF, in its whole column) is eliminated using its row.",
	},
	{
		Term: "Elementary row operations",
		Text: "Swapping two rows, multiplying a row by a nonzero number, and adding a multiple of one row to another. None of them changes the solutions of the system.",
	},
	{
		Term: "Rank",
		Text: "The number of pivots found during elimination.",
	},
	{
		Term: "Degenerate column",
		Text: "A column whose entries are all zero from the current row down, so it yields no pivot and is skipped.",
	},
}

// Example is a worked reduction shown to the learner.
type Example struct {
	Title string
	Mode  echelon.Mode
	Rows  [][]float64
}

// Examples are the worked reductions shown by the hub.
var Examples = []Example{
	{
		Title: "Converting to Row Echelon Form",
		Mode:  echelon.REF,
		Rows:  [][]float64{{2, 4, 6, 18}, {4, 5, 6, 24}, {3, 1, -2, 4}},
	},
	{
		Title: "Converting to Reduced Row Echelon Form",
		Mode:  echelon.RREF,
		Rows:  [][]float64{{2, 4, 6, 18}, {4, 5, 6, 24}, {3, 1, -2, 4}},
	},
	{
		Title: "A column with no pivot",
		Mode:  echelon.RREF,
		Rows:  [][]float64{{0, 2, 4}, {0, 1, 1}, {0, 0, 3}},
	},
}

// FunFacts are short trivia items cycled through by the hub.
var FunFacts = []string{
	"Gaussian elimination is named after Carl Friedrich Gauss, but the method appears in the Chinese text The Nine Chapters on the Mathematical Art, written almost two thousand years earlier.",
	"The word \"matrix\" was introduced by James Joseph Sylvester in 1850.",
	"Every matrix has exactly one reduced row echelon form, whichever sequence of row operations you use to reach it.",
	"The number of pivots in an echelon form is the rank of the matrix, and it never depends on the order of the row operations.",
	"Reducing an n×n matrix takes on the order of n³ arithmetic operations, which is why large systems are solved with more specialised methods.",
}

// FunFact returns fact number i, wrapping around the list.
func FunFact(i int) string {
	n := len(FunFacts)

	return FunFacts[((i%n)+n)%n]
}

// Solve reduces a fresh copy of the example's matrix.
func (e Example) Solve(opts ...echelon.Option) (*matrix.Dense, *echelon.Result, error) {
	m, err := matrix.NewDenseFromRows(e.Rows)
	if err != nil {
		return nil, nil, err
	}
	res, err := echelon.Reduce(m, e.Mode, opts...)
	if err != nil {
		return nil, nil, err
	}

	return m, res, nil
}

// WriteDefinitions prints the glossary.
func WriteDefinitions(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "\n Definitions:"); err != nil {
		return err
	}
	for i, d := range Definitions {
		if _, err := fmt.Fprintf(w, "%d. %s: %s\n", i+1, d.Term, d.Text); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)

	return err
}

// WriteExamples reduces every example and prints "input → result" lines.
// With steps set, the elementary row operations follow each example.
func WriteExamples(w io.Writer, steps bool) error {
	if _, err := fmt.Fprintln(w, "\n Examples:"); err != nil {
		return err
	}
	var opts []echelon.Option
	if steps {
		opts = append(opts, echelon.WithTrace())
	}
	for i, ex := range Examples {
		before, err := matrix.NewDenseFromRows(ex.Rows)
		if err != nil {
			return fmt.Errorf("example %d: %w", i+1, err)
		}
		in, err := render.Inline(before)
		if err != nil {
			return err
		}
		after, res, err := ex.Solve(opts...)
		if err != nil {
			return fmt.Errorf("example %d: %w", i+1, err)
		}
		out, err := render.Inline(after)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "Example %d: %s\n%s → %s\n", i+1, ex.Title, in, out); err != nil {
			return err
		}
		if err = render.Notices(w, res.Degenerate); err != nil {
			return err
		}
		if steps {
			if err = render.Steps(w, res.Steps); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}
