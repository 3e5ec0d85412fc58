package lsap

import "math"

// searchState holds the scratch buffers owned by the solver for the
// duration of one Solve call. Every buffer except path is reset at the start
// of each augmenting-path search (§3, "Per-iteration scratch"); path entries
// are overwritten as columns are relaxed. Nothing survives across calls.
type searchState struct {
	shortestPathCosts []float64 // best known reduced-cost distance to each column
	path              []int     // predecessor row on the shortest path to each column
	sr                []bool    // rows reached by the current search
	sc                []bool    // columns reached by the current search
	remaining         []int     // compacted complement set of unscanned columns
}

func newSearchState(nc int) *searchState {
	return &searchState{
		shortestPathCosts: make([]float64, nc),
		path:              make([]int, nc),
		sr:                make([]bool, 0), // sized per-call once nr is known
		sc:                make([]bool, nc),
		remaining:         make([]int, nc),
	}
}

// augmentingPath runs a single Dijkstra-like search over reduced costs,
// starting from row i0, and returns the sink column and the accumulated
// path cost minVal. It implements §4.2 verbatim, including both tie-break
// rules:
//
//   - remaining is filled in *reverse* order so that a constant cost matrix
//     yields the identity assignment under forward scanning.
//   - among columns tied for the minimum reduced cost, one whose column is
//     currently unmatched wins, which shortens the search on degenerate
//     (e.g. integer, small-coefficient) cost matrices.
//
// A returned sink of -1 means the cost matrix is infeasible from i0 onward.
func augmentingPath(cost *costView, u, v []float64, row4col []int, st *searchState, i0 int) (sink int, minVal float64, err error) {
	nc := len(v)
	nr := len(u)

	// Reset scratch for this search.
	for j := 0; j < nc; j++ {
		st.remaining[j] = nc - j - 1 // reverse order, see doc above
		st.shortestPathCosts[j] = math.Inf(1)
		st.sc[j] = false
	}
	if cap(st.sr) < nr {
		st.sr = make([]bool, nr)
	} else {
		st.sr = st.sr[:nr]
		for i := 0; i < nr; i++ {
			st.sr[i] = false
		}
	}

	numRemaining := nc
	minVal = 0
	sink = -1
	i := i0

	for sink == -1 {
		st.sr[i] = true

		index := -1
		lowest := math.Inf(1)
		for it := 0; it < numRemaining; it++ {
			j := st.remaining[it]

			r := minVal + cost.get(i, j) - u[i] - v[j]
			if r < st.shortestPathCosts[j] {
				st.shortestPathCosts[j] = r
				st.path[j] = i
			}

			// Tie-break: prefer a column that is currently unmatched, so the
			// search can terminate as soon as possible.
			if st.shortestPathCosts[j] < lowest || (st.shortestPathCosts[j] == lowest && row4col[j] == -1) {
				lowest = st.shortestPathCosts[j]
				index = it
			}
		}

		minVal = lowest
		if math.IsInf(minVal, 1) {
			return -1, 0, ErrInfeasible
		}

		j := st.remaining[index]
		if row4col[j] == -1 {
			sink = j
		} else {
			i = row4col[j]
		}

		st.sc[j] = true
		numRemaining--
		st.remaining[index] = st.remaining[numRemaining]
	}

	return sink, minVal, nil
}
