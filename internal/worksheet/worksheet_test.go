// SPDX-License-Identifier: MIT

package worksheet

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

func f64(v float64) *float64 { return &v }
func bptr(v bool) *bool      { return &v }

func TestLoadAndRun(t *testing.T) {
	ws, err := Load("testdata/basic.yaml")
	require.NoError(t, err)

	got, err := ws.Run(context.Background(), zerolog.Nop())
	require.NoError(t, err)

	want := []Result{
		{Step: 0, Op: "determinant", Scalar: f64(204)},
		{Step: 1, Op: "complements", Matrix: [][]float64{{0, 10, -20}, {4, -14, 8}, {-8, -2, 4}}},
		{Step: 2, Op: "inverse", Into: "Binv", Matrix: [][]float64{{1, -1, 1}, {-38, 41, -34}, {27, -29, 24}}},
		{Step: 3, Op: "times", Into: "I", Matrix: [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
		{Step: 4, Op: "equal", Bool: bptr(true)},
		{Step: 5, Op: "scale", Matrix: [][]float64{{2, 4, 6}, {0, 8, 4}, {10, 4, 2}}},
		{Step: 6, Op: "set_rows", Matrix: [][]float64{{1, 2, 3}, {0, 4, 2}, {5, 2, 1}, {0, 0, 0}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsExtension(t *testing.T) {
	_, err := Load("testdata/bad_ext.json")
	require.ErrorContains(t, err, "only YAML supported")
}

func TestParseStrict(t *testing.T) {
	_, err := Parse([]byte("matrices: {}\nsteps: []\nextra: 1\n"))
	require.ErrorContains(t, err, "strict worksheet parse error")

	_, err = Parse([]byte(""))
	require.ErrorIs(t, err, ErrEmptyWorksheet)

	_, err = Parse([]byte("matrices: {A: [[1]]}\nsteps: [{op: transpose, args: [A]}]\n---\nsteps: []\n"))
	require.ErrorContains(t, err, "multiple documents")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no steps", "matrices: {A: [[1]]}\n", ErrEmptyWorksheet},
		{"unknown op", "matrices: {A: [[1]]}\nsteps: [{op: cube, args: [A]}]\n", ErrUnknownOp},
		{"unknown matrix", "matrices: {A: [[1]]}\nsteps: [{op: transpose, args: [Z]}]\n", ErrUnknownMatrix},
		{"arity", "matrices: {A: [[1]]}\nsteps: [{op: plus, args: [A]}]\n", ErrArity},
		{"missing factor", "matrices: {A: [[1]]}\nsteps: [{op: scale, args: [A]}]\n", ErrMissingParam},
		{"missing size", "matrices: {A: [[1]]}\nsteps: [{op: set_cols, args: [A]}]\n", ErrMissingParam},
		{"ragged", "matrices: {A: [[1, 2], [3]]}\nsteps: [{op: transpose, args: [A]}]\n", ErrBadMatrix},
		{"into on determinant", "matrices: {A: [[1, 2], [3, 4]]}\nsteps: [{op: determinant, args: [A], into: D}, {op: transpose, args: [D]}]\n", ErrBadInto},
		{"into on equal", "matrices: {A: [[1]]}\nsteps: [{op: equal, args: [A, A], into: A}]\n", ErrBadInto},
		{"into used before defined", "matrices: {A: [[1]]}\nsteps: [{op: transpose, args: [T]}, {op: transpose, args: [A], into: T}]\n", ErrUnknownMatrix},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRunSurfacesMatrixErrors checks that matrix sentinels survive step wrapping
// and that results of earlier steps are still returned.
func TestRunSurfacesMatrixErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"non-square", "matrices: {A: [[1, 2]]}\nsteps: [{op: transpose, args: [A]}, {op: determinant, args: [A]}]\n", matrix.ErrNonSquare},
		{"singular", "matrices: {A: [[1, 2], [2, 4]]}\nsteps: [{op: transpose, args: [A]}, {op: inverse, args: [A]}]\n", matrix.ErrSingular},
		{"mismatch", "matrices: {A: [[1, 2]], B: [[1, 2]]}\nsteps: [{op: transpose, args: [A]}, {op: mul, args: [A, B]}]\n", matrix.ErrDimensionMismatch},
		{"bad size", "matrices: {A: [[1]]}\nsteps: [{op: transpose, args: [A]}, {op: set_rows, args: [A], size: -2}]\n", matrix.ErrInvalidDimensions},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ws, err := Parse([]byte(tc.doc))
			require.NoError(t, err)

			res, err := ws.Run(context.Background(), zerolog.Nop())
			require.ErrorIs(t, err, tc.want)
			require.ErrorContains(t, err, "step 1")
			require.Len(t, res, 1)
		})
	}
}

// TestRunInPlaceIsolation checks that an in-place result stored under a new
// name does not alias the operand it was computed on.
func TestRunInPlaceIsolation(t *testing.T) {
	doc := `
matrices:
  A: [[1, 2], [3, 4]]
steps:
  - {op: add, args: [A, A], into: D}
  - {op: add, args: [A, A]}
  - {op: equal, args: [A, D]}
`
	ws, err := Parse([]byte(doc))
	require.NoError(t, err)

	res, err := ws.Run(context.Background(), zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 4}, {6, 8}}, res[0].Matrix)
	require.Equal(t, [][]float64{{4, 8}, {12, 16}}, res[1].Matrix)
	require.False(t, *res[2].Bool)
}

func TestRunHonoursContext(t *testing.T) {
	ws, err := Parse([]byte("matrices: {A: [[1]]}\nsteps: [{op: transpose, args: [A]}]\n"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := ws.Run(ctx, zerolog.Nop())
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, res)
}
