// Package rectassign solves the rectangular linear sum assignment problem:
// given an nr×nc cost matrix, find min(nr, nc) (row, column) pairs, no two
// sharing a row or a column, that minimize (or maximize) total cost.
//
// The solver itself lives in the lsap subpackage, built around the
// shortest-augmenting-path method over dual variables described in
// Crouse, "On Implementing 2D Rectangular Assignment Algorithms" (2016).
// The root module additionally provides:
//
//	lsap/    — the solver: Solve, SolveMatrix, SolveDType, subscripting and
//	           numerical-stability options
//	matrix/  — dense row-major numeric storage for a cost matrix
//	matconv/ — adapters from matrix.Dense and gonum's mat.Matrix into the
//	           solver's flat buffer contract
//	flow/    — a bipartite feasibility pre-check: does a complete assignment
//	           exist at all among allowed pairings, before paying for the
//	           full solve
//	cmd/rectassign/ — a CLI front end for solving a cost matrix from a file
//
// Quick example:
//
//	cost := [][]float64{
//		{4, 1, 3},
//		{2, 0, 5},
//		{3, 2, 2},
//	}
//	rows, cols, err := lsap.Solve(cost, false)
//	// rows, cols = [0 1 2], [1 0 2]; total cost 5
package rectassign
