package flow

import "context"

// bipartite is a row-indexed adjacency list over allowed row/column pairs:
// rowAdj[i] lists every column j for which allowed(i, j) held at
// construction time. No vertex or edge objects, no locking — this network
// never outlives one BipartiteFeasible call.
type bipartite struct {
	nr, nc int
	rowAdj [][]int
}

func newBipartite(nr, nc int, allowed func(i, j int) bool) *bipartite {
	b := &bipartite{nr: nr, nc: nc, rowAdj: make([][]int, nr)}
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if allowed(i, j) {
				b.rowAdj[i] = append(b.rowAdj[i], j)
			}
		}
	}
	return b
}

// augment tries to find an augmenting path from row i, using visited to
// keep the search from revisiting a column within the current attempt.
// matchCol[j] holds the row currently matched to column j, or -1.
func (b *bipartite) augment(i int, visited []bool, matchCol []int) bool {
	for _, j := range b.rowAdj[i] {
		if visited[j] {
			continue
		}
		visited[j] = true
		if matchCol[j] == -1 || b.augment(matchCol[j], visited, matchCol) {
			matchCol[j] = i
			return true
		}
	}
	return false
}

// maxMatching runs Kuhn's algorithm: one augmenting-path attempt per row,
// each attempt scanning every column at most once. Complexity O(nr * E)
// where E is the number of allowed pairs.
func (b *bipartite) maxMatching(ctx context.Context) (int, error) {
	matchCol := make([]int, b.nc)
	for j := range matchCol {
		matchCol[j] = -1
	}

	matched := 0
	for i := 0; i < b.nr; i++ {
		select {
		case <-ctx.Done():
			return matched, ctx.Err()
		default:
		}
		visited := make([]bool, b.nc)
		if b.augment(i, visited, matchCol) {
			matched++
		}
	}
	return matched, nil
}

// MaxBipartiteMatching returns the size of a maximum matching between rows
// [0, nr) and columns [0, nc), restricted to pairs allowed reports true
// for. allowed is evaluated once per (i, j) pair during construction.
func MaxBipartiteMatching(ctx context.Context, nr, nc int, allowed func(i, j int) bool) (matchingSize int, err error) {
	if nr == 0 || nc == 0 {
		return 0, nil
	}
	return newBipartite(nr, nc, allowed).maxMatching(ctx)
}

// BipartiteFeasible reports whether an nr×nc cost matrix admits a complete
// assignment of size min(nr, nc) restricted to pairs allowed reports true
// for. By Hall's theorem, that complete assignment exists iff the maximum
// matching over allowed pairs equals min(nr, nc).
//
// This is a cheaper pre-check than running the full solver when most of a
// large matrix's entries are forbidden (e.g. represented as +Inf): a
// negative answer here means lsap.Solve or lsap.SolveMatrix would return
// ErrInfeasible without needing to run the augmenting-path search at all.
func BipartiteFeasible(ctx context.Context, nr, nc int, allowed func(i, j int) bool) (feasible bool, matchingSize int, err error) {
	size, err := MaxBipartiteMatching(ctx, nr, nc, allowed)
	if err != nil {
		return false, size, err
	}
	want := nr
	if nc < want {
		want = nc
	}
	return size == want, size, nil
}
