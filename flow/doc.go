// Package flow answers one question cheaply: given an nr×nc grid of
// allowed row/column pairings, does a complete assignment of size
// min(nr, nc) exist at all?
//
// This is useful ahead of an lsap.Solve call on a cost matrix that encodes
// forbidden pairings as +Inf entries: a matrix with many forbidden entries
// can fail Hall's condition long before the augmenting-path search would
// discover that on its own, and BipartiteFeasible reports that without
// paying for the full dual-variable search.
//
// The network involved is always the same small shape — a row layer, a
// column layer, and edges only where allowed(i, j) holds — so this package
// represents it directly as a row-indexed adjacency list (in the spirit of
// a plain [][]int adjacency slice, not a general-purpose graph type) and
// finds a maximum matching over it with Kuhn's augmenting-path algorithm,
// the classical unweighted counterpart to the dual-variable augmenting
// search lsap runs for the weighted problem.
//
// # API
//
//	func MaxBipartiteMatching(ctx context.Context, nr, nc int, allowed func(i, j int) bool) (matchingSize int, err error)
//	func BipartiteFeasible(ctx context.Context, nr, nc int, allowed func(i, j int) bool) (feasible bool, matchingSize int, err error)
package flow
