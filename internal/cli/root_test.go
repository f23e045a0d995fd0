package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/echelon/internal/cli"
	"github.com/katalvlaran/echelon/internal/input"
	"github.com/katalvlaran/echelon/internal/logging"
)

type harness struct {
	fs     afero.Fs
	stdin  string
	out    bytes.Buffer
	errOut bytes.Buffer
}

func newHarness(t *testing.T, files map[string]string) *harness {
	t.Helper()
	t.Setenv(logging.EnvLevel, "")
	h := &harness{fs: afero.NewMemMapFs()}
	for name, body := range files {
		require.NoError(t, afero.WriteFile(h.fs, name, []byte(body), 0o600))
	}

	return h
}

func (h *harness) run(args ...string) error {
	root := cli.NewRootCommand(cli.Env{
		Fs:     h.fs,
		In:     strings.NewReader(h.stdin),
		Out:    &h.out,
		ErrOut: &h.errOut,
	})
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	root.SetArgs(args)

	return root.Execute()
}

const scenarioText = "2 4 6 18\n4 5 6 24\n3 1 -2 4\n"

func TestREF_FromFile(t *testing.T) {
	h := newHarness(t, map[string]string{"sys.txt": scenarioText})
	require.NoError(t, h.run("ref", "sys.txt"))

	require.Equal(t, "Converting to Row Echelon Form...\n\n"+
		"\nYour Matrix:\n"+
		"  1.00 |   2.00 |   3.00 |   9.00\n"+
		"  0.00 |   1.00 |   2.00 |   4.00\n"+
		"  0.00 |   0.00 |   1.00 |   3.00\n\n", h.out.String())
	require.Empty(t, h.errOut.String())
}

func TestRREF_YAMLWithStepsAndTable(t *testing.T) {
	h := newHarness(t, map[string]string{
		"sys.yaml": "rows:\n  - [2, 4, 6, 18]\n  - [4, 5, 6, 24]\n  - [3, 1, -2, 4]\n",
	})
	require.NoError(t, h.run("rref", "--steps", "--table", "sys.yaml"))

	out := h.out.String()
	require.Contains(t, out, "Converting to Reduced Row Echelon Form...")
	require.Contains(t, out, "Steps:\n  1. R1 <- 0.5 * R1\n")
	require.Contains(t, out, "C4")
	require.Contains(t, out, "-2.00")
}

func TestREF_FromStdin(t *testing.T) {
	for _, args := range [][]string{{"ref"}, {"ref", "-"}} {
		h := newHarness(t, nil)
		h.stdin = scenarioText + "done\n"
		require.NoError(t, h.run(args...))
		require.Contains(t, h.out.String(), "  0.00 |   0.00 |   1.00 |   3.00\n")
	}
}

func TestREF_DiagonalFlag(t *testing.T) {
	h := newHarness(t, map[string]string{"m.txt": "0 1\n0 0\n"})
	require.NoError(t, h.run("ref", "m.txt"))
	require.Equal(t, 1, strings.Count(h.out.String(), "Warning: Column"))

	h = newHarness(t, map[string]string{"m.txt": "0 1\n0 0\n"})
	require.NoError(t, h.run("ref", "--diagonal", "m.txt"))
	require.Equal(t, 2, strings.Count(h.out.String(), "Warning: Column"))
}

func TestREF_ToleranceFlag(t *testing.T) {
	h := newHarness(t, map[string]string{"m.txt": "1e-12 1\n0 1\n"})
	require.NoError(t, h.run("ref", "--tolerance", "1e-9", "m.txt"))
	require.Contains(t, h.out.String(), " Warning: Column 0 contains only zeros. Skipping pivot.")

	h = newHarness(t, map[string]string{"m.txt": "1 0\n0 1\n"})
	err := h.run("ref", "--tolerance=-1", "m.txt")
	require.ErrorIs(t, err, cli.ErrInvalidTolerance)
}

func TestREF_InputErrors(t *testing.T) {
	h := newHarness(t, map[string]string{"ragged.txt": "1 2\n3\n"})
	err := h.run("ref", "ragged.txt")
	require.ErrorIs(t, err, input.ErrRaggedRows)
	require.Contains(t, err.Error(), "failed to read matrix: ragged.txt: ")

	err = h.run("ref", "missing.txt")
	require.Error(t, err)
	require.False(t, input.IsInputError(err))

	err = h.run("ref", "a.txt", "b.txt")
	require.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	h := newHarness(t, map[string]string{"m.txt": "0 0\n0 0\n"})
	require.NoError(t, h.run("ref", "--log-level", "info", "m.txt"))
	require.Contains(t, h.errOut.String(), "echelon.engine: column contains only zeros; skipping pivot")

	err := h.run("ref", "--log-level", "loud", "m.txt")
	require.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestLearn(t *testing.T) {
	h := newHarness(t, nil)
	h.stdin = "1\n" + scenarioText + "done\n2\n3\n5\n"
	require.NoError(t, h.run("learn"))

	out := h.out.String()
	require.Contains(t, out, "Welcome to the Matrix Learning Hub!")
	require.Contains(t, out, "  0.00 |   1.00 |   0.00 |  -2.00\n")
	require.Contains(t, out, "Goodbye!")
}

func TestTeachingCommands(t *testing.T) {
	h := newHarness(t, nil)
	require.NoError(t, h.run("definitions"))
	require.Contains(t, h.out.String(), "Reduced Row Echelon Form (RREF): ")

	h = newHarness(t, nil)
	require.NoError(t, h.run("examples", "--steps"))
	require.Contains(t, h.out.String(), "Example 1: Converting to Row Echelon Form")
	require.Contains(t, h.out.String(), "R1 <- 0.5 * R1")
}

func TestRoot_PrintsHelp(t *testing.T) {
	h := newHarness(t, nil)
	require.NoError(t, h.run())
	require.Contains(t, h.out.String(), "echelon learn")
	require.Contains(t, h.out.String(), "rref")
}
