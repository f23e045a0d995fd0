// SPDX-License-Identifier: MIT

// Package session runs the interactive learning hub: a main menu for
// entering a matrix and reading teaching material, and a matrix menu that
// reduces the entered matrix to REF or RREF.
//
// The session owns its matrix exclusively. Successive REF/RREF requests
// reduce the same matrix in place, one after another. End of input ends the
// session without error at any prompt.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/echelon/echelon"
	"github.com/katalvlaran/echelon/internal/input"
	"github.com/katalvlaran/echelon/internal/render"
	"github.com/katalvlaran/echelon/internal/tutor"
	"github.com/katalvlaran/echelon/matrix"
)

// Main menu choices.
const (
	choiceEnter = iota + 1
	choiceFunFact
	choiceDefinitions
	choiceExamples
	choiceQuit
)

// Matrix menu choices.
const (
	actionREF = iota + 1
	actionRREF
	actionReturn
)

const (
	msgWelcome      = "\n Welcome to the Matrix Learning Hub! "
	msgMainMenu     = "\nWhat would you like to do?\n1. Enter a new matrix\n2. Read a fun fact about matrices\n3. See definitions\n4. See examples\n5. Quit"
	msgMatrixMenu   = "\nWhat do you want to do with the matrix?\n1. Convert to Row Echelon Form (REF)\n2. Convert to Reduced Row Echelon Form (RREF)\n3. Return to Main Menu"
	msgEnterMatrix  = "\nEnter your matrix row by row. Type 'done' when finished."
	msgRowPrompt    = "Enter row (separate numbers by space): "
	msgInvalidRow   = " Invalid input. Please enter numbers only."
	msgNonFiniteRow = " Invalid input. Please enter finite numbers only."
	msgNoMatrix     = " No valid matrix entered. Returning to main menu."
	msgRagged       = " All rows must have the same number of elements. Try again."
	msgInvalidPick  = " Invalid choice. Please try again."
	msgGoodbye      = "\nThank you for learning matrices with us! Goodbye! "
)

// errEOF signals that the input stream ended; Run turns it into a clean exit.
var errEOF = errors.New("session: end of input")

// Session is one interactive run bound to an input and an output stream.
type Session struct {
	in   *bufio.Scanner
	out  io.Writer
	o    Options
	fact int
}

// New binds a Session to in and out.
func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	return &Session{
		in:  bufio.NewScanner(in),
		out: out,
		o:   gatherOptions(opts...),
	}
}

// Run drives the main menu until the user quits or the input ends.
// Only write failures and engine failures are returned.
func (s *Session) Run() error {
	err := s.run()
	if errors.Is(err, errEOF) {
		s.o.logger.Debug("input closed; ending session")

		return nil
	}

	return err
}

func (s *Session) run() error {
	if err := s.println(msgWelcome); err != nil {
		return err
	}
	for {
		if err := s.println(msgMainMenu); err != nil {
			return err
		}
		choice, err := s.choose("Enter your choice (1-5): ", choiceQuit)
		if err != nil {
			return err
		}
		s.o.logger.Debug("menu choice", "menu", "main", "choice", choice)

		switch choice {
		case choiceEnter:
			m, err := s.readMatrix()
			if err != nil {
				return err
			}
			if m == nil {
				continue
			}
			if err = s.matrixMenu(m); err != nil {
				return err
			}
		case choiceFunFact:
			err = s.println("\n Fun fact: " + tutor.FunFact(s.fact))
			s.fact++
		case choiceDefinitions:
			err = tutor.WriteDefinitions(s.out)
		case choiceExamples:
			err = tutor.WriteExamples(s.out, s.o.steps)
		case choiceQuit:
			return s.println(msgGoodbye)
		}
		if err != nil {
			return err
		}
	}
}

// choose prompts until the user enters an integer in 1..n.
func (s *Session) choose(prompt string, n int) (int, error) {
	for {
		line, err := s.prompt(prompt)
		if err != nil {
			return 0, err
		}
		c, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && c >= 1 && c <= n {
			return c, nil
		}
		if err = s.println(msgInvalidPick); err != nil {
			return 0, err
		}
	}
}

// readMatrix collects rows until "done". Invalid rows are reported and
// re-prompted. It returns (nil, nil) when the collected grid is empty or
// ragged, after telling the user.
func (s *Session) readMatrix() (*matrix.Dense, error) {
	if err := s.println(msgEnterMatrix); err != nil {
		return nil, err
	}

	var rows [][]float64
	for {
		line, err := s.prompt(msgRowPrompt)
		if err != nil {
			return nil, err
		}
		if input.IsDone(line) {
			break
		}
		row, err := input.ParseRow(line)
		if err != nil {
			s.o.logger.Info("rejected row", "error", err)
			msg := msgInvalidRow
			if errors.Is(err, matrix.ErrNaNInf) {
				msg = msgNonFiniteRow
			}
			if err = s.println(msg); err != nil {
				return nil, err
			}
			continue
		}
		rows = append(rows, row)
	}

	m, err := input.Build(rows)
	switch {
	case err == nil:
		s.o.logger.Debug("matrix entered", "rows", m.Rows(), "cols", m.Cols())

		return m, nil
	case errors.Is(err, input.ErrEmptyMatrix):
		return nil, s.println(msgNoMatrix)
	case errors.Is(err, input.ErrRaggedRows):
		s.o.logger.Info("rejected matrix", "error", err)

		return nil, s.println(msgRagged)
	default:
		return nil, err
	}
}

// matrixMenu offers REF/RREF on m until the user returns.
func (s *Session) matrixMenu(m *matrix.Dense) error {
	for {
		if err := s.println(msgMatrixMenu); err != nil {
			return err
		}
		action, err := s.choose("Enter your choice (1-3): ", actionReturn)
		if err != nil {
			return err
		}
		s.o.logger.Debug("menu choice", "menu", "matrix", "choice", action)

		switch action {
		case actionREF:
			err = s.reduce(m, echelon.REF)
		case actionRREF:
			err = s.reduce(m, echelon.RREF)
		case actionReturn:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// reduce runs one reduction on m in place and prints the report.
func (s *Session) reduce(m *matrix.Dense, mode echelon.Mode) error {
	if err := s.println("\n" + render.Heading(mode) + "\n"); err != nil {
		return err
	}
	opts := append([]echelon.Option{echelon.WithLogger(s.engineLogger())}, s.o.engine...)
	if s.o.steps {
		opts = append(opts, echelon.WithTrace())
	}
	res, err := echelon.Reduce(m, mode, opts...)
	if err != nil {
		return err
	}

	return render.Report(s.out, res, render.Options{Table: s.o.table, Steps: s.o.steps})
}

func (s *Session) engineLogger() hclog.Logger {
	return s.o.logger.Named("engine")
}

// prompt writes p without a newline and reads one line.
func (s *Session) prompt(p string) (string, error) {
	if _, err := io.WriteString(s.out, p); err != nil {
		return "", err
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("session: read input: %w", err)
		}
		_ = s.println("")

		return "", errEOF
	}

	return s.in.Text(), nil
}

func (s *Session) println(msg string) error {
	_, err := fmt.Fprintln(s.out, msg)

	return err
}
