package flow_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rectassign/flow"
)

func TestBipartiteFeasible_SquareFullyAllowed(t *testing.T) {
	allowed := func(i, j int) bool { return true }
	feasible, size, err := flow.BipartiteFeasible(context.Background(), 3, 3, allowed)
	require.NoError(t, err)
	require.True(t, feasible)
	require.Equal(t, 3, size)
}

func TestBipartiteFeasible_ForbiddenColumnMakesItInfeasible(t *testing.T) {
	// 3x3, but column 2 is forbidden for every row: at most a 2-matching.
	cost := [][]float64{
		{1, 2, math.Inf(1)},
		{3, 4, math.Inf(1)},
		{5, 6, math.Inf(1)},
	}
	allowed := func(i, j int) bool { return !math.IsInf(cost[i][j], 1) }

	feasible, size, err := flow.BipartiteFeasible(context.Background(), 3, 3, allowed)
	require.NoError(t, err)
	require.False(t, feasible, "column 2 has no allowed pairing")
	require.Equal(t, 2, size)
}

func TestBipartiteFeasible_RectangularTallSide(t *testing.T) {
	// 4 rows, 2 columns, everything allowed: max matching is min(4,2) = 2.
	allowed := func(i, j int) bool { return true }
	feasible, size, err := flow.BipartiteFeasible(context.Background(), 4, 2, allowed)
	require.NoError(t, err)
	require.True(t, feasible)
	require.Equal(t, 2, size)
}

func TestBipartiteFeasible_EmptyIsTriviallyFeasible(t *testing.T) {
	allowed := func(i, j int) bool { return false }
	feasible, size, err := flow.BipartiteFeasible(context.Background(), 0, 5, allowed)
	require.NoError(t, err)
	require.True(t, feasible)
	require.Equal(t, 0, size)
}

func TestBipartiteFeasible_DiagonalOnlyIsFeasible(t *testing.T) {
	allowed := func(i, j int) bool { return i == j }
	feasible, size, err := flow.BipartiteFeasible(context.Background(), 3, 3, allowed)
	require.NoError(t, err)
	require.True(t, feasible)
	require.Equal(t, 3, size)
}

func TestMaxBipartiteMatching_RequiresAugmentingReassignment(t *testing.T) {
	// row0 only fits col0; row1 fits col0 or col1. A greedy row-order pass
	// that doesn't reassign row0 away from col0 would under-count this.
	allowed := func(i, j int) bool {
		switch {
		case i == 0:
			return j == 0
		case i == 1:
			return j == 0 || j == 1
		}
		return false
	}
	size, err := flow.MaxBipartiteMatching(context.Background(), 2, 2, allowed)
	require.NoError(t, err)
	require.Equal(t, 2, size)
}

func TestMaxBipartiteMatching_RespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := flow.MaxBipartiteMatching(ctx, 5, 5, func(i, j int) bool { return true })
	require.ErrorIs(t, err, context.Canceled)
}
