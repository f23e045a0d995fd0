package echelon_test

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/katalvlaran/echelon/echelon"
	"github.com/katalvlaran/echelon/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func requireClose(t testing.TB, want [][]float64, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "rows")
	require.Equal(t, len(want[0]), got.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, tol, "element [%d,%d]", i, j)
		}
	}
}

var scenarioInput = [][]float64{{2, 4, 6, 18}, {4, 5, 6, 24}, {3, 1, -2, 4}}

func TestToREF_Scenario1(t *testing.T) {
	m := mustDense(t, scenarioInput)
	res, err := echelon.ToREF(m)
	require.NoError(t, err)

	requireClose(t, [][]float64{{1, 2, 3, 9}, {0, 1, 2, 4}, {0, 0, 1, 3}}, m)
	require.Same(t, m, res.Matrix)
	require.Equal(t, echelon.REF, res.Mode)
	require.Equal(t, 3, res.Rank())
	require.Equal(t, []int{0, 1, 2}, res.PivotColumns())
	require.Empty(t, res.Degenerate)
	require.Equal(t, []float64{2, -3, -1}, []float64{res.Pivots[0].Value, res.Pivots[1].Value, res.Pivots[2].Value})
}

func TestToRREF_Scenario2(t *testing.T) {
	m := mustDense(t, scenarioInput)
	res, err := echelon.ToRREF(m)
	require.NoError(t, err)

	requireClose(t, [][]float64{{1, 0, 0, 4}, {0, 1, 0, -2}, {0, 0, 1, 3}}, m)
	require.Equal(t, echelon.RREF, res.Mode)
	require.Equal(t, 3, res.Rank())

	ok, err := echelon.IsRREF(m, tol)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestReduce_ZeroMatrix: an all-zero matrix is left unchanged, every column
// is reported degenerate and nothing fails.
func TestReduce_ZeroMatrix(t *testing.T) {
	for _, mode := range []echelon.Mode{echelon.REF, echelon.RREF} {
		for _, diagonal := range []bool{false, true} {
			var opts []echelon.Option
			if diagonal {
				opts = append(opts, echelon.WithDiagonalPivots())
			}
			m := mustDense(t, [][]float64{{0, 0}, {0, 0}})
			res, err := echelon.Reduce(m, mode, opts...)
			require.NoError(t, err, "mode=%s diagonal=%v", mode, diagonal)

			requireClose(t, [][]float64{{0, 0}, {0, 0}}, m)
			require.Len(t, res.Degenerate, 2)
			require.Equal(t, 0, res.Rank())
			require.Equal(t, 0, res.Degenerate[0].Col)
			require.Equal(t, 1, res.Degenerate[1].Col)
		}
	}
}

// TestReduce_SwapsZeroPivot: a zero in the pivot slot pulls up the first
// lower row with a non-zero entry before scaling.
func TestReduce_SwapsZeroPivot(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 2}, {3, 4}})
	res, err := echelon.ToREF(m, echelon.WithTrace())
	require.NoError(t, err)

	require.NotEmpty(t, res.Steps)
	require.Equal(t, echelon.Step{Op: echelon.OpSwap, Target: 0, Source: 1}, res.Steps[0])
	require.Equal(t, 3.0, res.Pivots[0].Value)
	requireClose(t, [][]float64{{1, 4.0 / 3.0}, {0, 1}}, m)
}

func TestToREF_TraceScenario1(t *testing.T) {
	res, err := echelon.ToREF(mustDense(t, scenarioInput), echelon.WithTrace())
	require.NoError(t, err)

	got := make([]string, len(res.Steps))
	for i, s := range res.Steps {
		got[i] = s.String()
	}
	require.Equal(t, []string{
		"R1 <- 0.5 * R1",
		"R2 <- R2 + (-4) * R1",
		"R3 <- R3 + (-3) * R1",
		"R2 <- (-0.3333333333333333) * R2",
		"R3 <- R3 + 5 * R2",
		"R3 <- (-1) * R3",
	}, got)
}

func TestReduce_NoTraceByDefault(t *testing.T) {
	res, err := echelon.ToRREF(mustDense(t, scenarioInput))
	require.NoError(t, err)
	require.Nil(t, res.Steps)
}

// TestReduce_TrackedVsDiagonal shows where the two pivot policies part ways.
func TestReduce_TrackedVsDiagonal(t *testing.T) {
	tests := []struct {
		name         string
		in           [][]float64
		diagonal     bool
		wantRank     int
		wantDegCols  []int
		wantPivotCol []int
	}{
		{"tracked finds pivot right of an empty column", [][]float64{{0, 1}, {0, 0}}, false, 1, []int{0}, []int{1}},
		{"diagonal loses it", [][]float64{{0, 1}, {0, 0}}, true, 0, []int{0, 1}, []int{}},
		{"tracked wide", [][]float64{{0, 0, 1}, {0, 0, 0}}, false, 1, []int{0, 1}, []int{2}},
		{"diagonal wide stops at min(r,c)", [][]float64{{0, 0, 1}, {0, 0, 0}}, true, 0, []int{0, 1}, []int{}},
		{"tall full rank agrees", [][]float64{{1, 2}, {3, 4}, {5, 6}}, true, 2, []int{}, []int{0, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var opts []echelon.Option
			if tc.diagonal {
				opts = append(opts, echelon.WithDiagonalPivots())
			}
			res, err := echelon.ToREF(mustDense(t, tc.in), opts...)
			require.NoError(t, err)
			require.Equal(t, tc.wantRank, res.Rank())
			require.Equal(t, tc.wantPivotCol, res.PivotColumns())

			deg := make([]int, len(res.Degenerate))
			for i, d := range res.Degenerate {
				deg[i] = d.Col
			}
			require.Equal(t, tc.wantDegCols, deg)
		})
	}
}

func TestReduce_DegenerateKeepsRowSlot(t *testing.T) {
	// column 0 is empty; the pivot for column 1 must land in row 0
	m := mustDense(t, [][]float64{{0, 2, 4}, {0, 1, 1}, {0, 0, 3}})
	res, err := echelon.ToRREF(m)
	require.NoError(t, err)

	require.Equal(t, []echelon.DegenerateColumn{{Col: 0, Row: 0}}, res.Degenerate)
	require.Equal(t, []int{1, 2}, res.PivotColumns())
	require.Equal(t, 0, res.Pivots[0].Row)
	require.Equal(t, 1, res.Pivots[1].Row)
	requireClose(t, [][]float64{{0, 1, 0}, {0, 0, 1}, {0, 0, 0}}, m)
	require.Equal(t, "column 0 contains only zeros at or below row 0; skipping pivot", res.Degenerate[0].String())
}

func TestReduce_ZeroTolerance(t *testing.T) {
	in := [][]float64{{1e-12, 1}, {0, 1}}

	exact, err := echelon.ToREF(mustDense(t, in))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, exact.PivotColumns())
	require.Equal(t, 1e-12, exact.Pivots[0].Value)

	loose, err := echelon.ToREF(mustDense(t, in), echelon.WithZeroTolerance(1e-9))
	require.NoError(t, err)
	require.Equal(t, []int{1}, loose.PivotColumns())
	require.Equal(t, []echelon.DegenerateColumn{{Col: 0, Row: 0}}, loose.Degenerate)
}

func TestWithZeroTolerance_PanicsOnNonsense(t *testing.T) {
	require.Panics(t, func() { echelon.WithZeroTolerance(-1e-9) })
	require.NotPanics(t, func() { echelon.WithZeroTolerance(0) })
}

func TestReduce_Errors(t *testing.T) {
	_, err := echelon.Reduce(mustDense(t, [][]float64{{1}}), echelon.Mode(7))
	require.ErrorIs(t, err, echelon.ErrUnknownMode)

	_, err = echelon.ToREF(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = echelon.ToRREF(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Contains(t, err.Error(), "ToRREF: ")
}

// zeroScaler is a RowMatrix whose ScaleRow always refuses, standing in for
// a broken implementation.
type zeroScaler struct{ *matrix.Dense }

func (zeroScaler) ScaleRow(int, float64) error { return matrix.ErrInvalidScalar }

func TestReduce_SurfacesRowOpErrors(t *testing.T) {
	_, err := echelon.ToREF(zeroScaler{mustDense(t, [][]float64{{2, 1}, {1, 1}})})
	require.ErrorIs(t, err, matrix.ErrInvalidScalar)
	require.Contains(t, err.Error(), "ToREF: ")
}

func TestReduce_LogsDegenerateColumns(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Name: "test", Output: &buf, Level: hclog.Info})

	_, err := echelon.ToREF(mustDense(t, [][]float64{{0, 0}, {0, 0}}), echelon.WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "skipping pivot")
	require.Contains(t, buf.String(), "col=1")

	// nil falls back to the silent default
	_, err = echelon.ToREF(mustDense(t, [][]float64{{0}}), echelon.WithLogger(nil))
	require.NoError(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := echelon.ParseMode("RREF")
	require.NoError(t, err)
	require.Equal(t, echelon.RREF, m)

	m, err = echelon.ParseMode(" ref ")
	require.NoError(t, err)
	require.Equal(t, echelon.REF, m)

	_, err = echelon.ParseMode("lu")
	require.ErrorIs(t, err, echelon.ErrUnknownMode)

	require.Equal(t, "Mode(9)", echelon.Mode(9).String())
}
