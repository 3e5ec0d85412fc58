package matconv_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rectassign/matconv"
	"github.com/katalvlaran/rectassign/matrix"
)

func buildDense(t *testing.T, cost [][]float64) *matrix.Dense {
	t.Helper()
	rows, cols := len(cost), len(cost[0])
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i := range cost {
		for j := range cost[i] {
			require.NoError(t, m.Set(i, j, cost[i][j]))
		}
	}
	return m
}

func TestFromDense_MinimizeSquare(t *testing.T) {
	cost := [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	a, b, err := matconv.FromDense(buildDense(t, cost), false)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, a)
	require.Equal(t, []int{1, 0, 2}, b)
}

func TestFromDense_MaximizeSquare(t *testing.T) {
	cost := [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	a, b, err := matconv.FromDense(buildDense(t, cost), true)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, a)
	require.Equal(t, []int{0, 2, 1}, b)
}

func TestFromGonum_AgreesWithFromDense(t *testing.T) {
	cost := [][]float64{
		{10, 19, 8, 15},
		{10, 18, 7, 17},
		{13, 16, 9, 14},
	}
	flat := make([]float64, 0, 12)
	for _, row := range cost {
		flat = append(flat, row...)
	}
	gm := mat.NewDense(3, 4, flat)

	gotA, gotB, err := matconv.FromGonum(gm, false)
	require.NoError(t, err)

	wantA, wantB, err := matconv.FromDense(buildDense(t, cost), false)
	require.NoError(t, err)
	require.Equal(t, wantA, gotA)
	require.Equal(t, wantB, gotB)
}

func TestToDense_RoundTripsFromFlatBuffer(t *testing.T) {
	flat := []float64{1, 2, 3, 4, 5, 6}
	m, err := matconv.ToDense(2, 3, flat)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, flat[i*3+j], got)
		}
	}
}

func TestToDense_EmptyShape(t *testing.T) {
	m, err := matconv.ToDense(0, 3, nil)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 3, c)
}
