package lsap

import "sort"

// solveCore is the algorithm driver shared by Solve, SolveDType and
// SolveMatrix. It validates inputs, arranges orientation (subscript,
// transpose, negate), runs the per-row augmenting-path loop, updates dual
// variables, augments the matching, and assembles the output in the
// caller's original coordinate system, per §4.3.
func solveCore(nrRaw, ncRaw int, read reader, maximize bool, opts Options) (a, b []int, err error) {
	// 1. Trivial input.
	if nrRaw == 0 || ncRaw == 0 {
		return []int{}, []int{}, nil
	}

	// 2. NaN / ill-signed infinity scan, over the full raw matrix.
	if err := validateCosts(read, nrRaw, ncRaw, maximize); err != nil {
		return nil, nil, err
	}

	// 3. Subscript bounds.
	if err := validateSubscript(opts.Subrows, nrRaw); err != nil {
		return nil, nil, err
	}
	if err := validateSubscript(opts.Subcols, ncRaw); err != nil {
		return nil, nil, err
	}

	var subrows, subcols []int
	if len(opts.Subrows) > 0 {
		subrows = opts.Subrows
	}
	if len(opts.Subcols) > 0 {
		subcols = opts.Subcols
	}

	nr := nrRaw
	if subrows != nil {
		nr = len(subrows)
	}
	nc := ncRaw
	if subcols != nil {
		nc = len(subcols)
	}

	// A tall rectangular matrix is solved by transposing so nr <= nc always.
	transpose := nc < nr
	if transpose {
		nr, nc = nc, nr
	}

	view := &costView{
		read:      read,
		ncRaw:     ncRaw,
		transpose: transpose,
		negate:    maximize,
		subrows:   subrows,
		subcols:   subcols,
	}

	u := make([]float64, nr)
	v := make([]float64, nc)
	col4row := make([]int, nr)
	row4col := make([]int, nc)
	for i := range col4row {
		col4row[i] = -1
	}
	for j := range row4col {
		row4col[j] = -1
	}

	var uComp, vComp []float64
	if opts.Kahan {
		uComp = make([]float64, nr)
		vComp = make([]float64, nc)
	}

	st := newSearchState(nc)

	for curRow := 0; curRow < nr; curRow++ {
		sink, minVal, augErr := augmentingPath(view, u, v, row4col, st, curRow)
		if augErr != nil {
			return nil, nil, augErr
		}

		// Dual update: preserves feasibility and tightens equalities along
		// the augmenting path just found.
		if opts.Kahan {
			kahanAdd(&u[curRow], &uComp[curRow], minVal)
			for i := 0; i < nr; i++ {
				if st.sr[i] && i != curRow {
					kahanAdd(&u[i], &uComp[i], minVal-st.shortestPathCosts[col4row[i]])
				}
			}
			for j := 0; j < nc; j++ {
				if st.sc[j] {
					kahanAdd(&v[j], &vComp[j], -(minVal - st.shortestPathCosts[j]))
				}
			}
		} else {
			u[curRow] += minVal
			for i := 0; i < nr; i++ {
				if st.sr[i] && i != curRow {
					u[i] += minVal - st.shortestPathCosts[col4row[i]]
				}
			}
			for j := 0; j < nc; j++ {
				if st.sc[j] {
					v[j] -= minVal - st.shortestPathCosts[j]
				}
			}
		}

		// Augment: shift the matching by one edge along the path just found.
		j := sink
		for {
			i := st.path[j]
			row4col[j] = i
			col4row[i], j = j, col4row[i]
			if i == curRow {
				break
			}
		}
	}

	a = make([]int, nr)
	b = make([]int, nr)
	if transpose {
		order := make([]int, nr)
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(x, y int) bool { return col4row[order[x]] < col4row[order[y]] })
		for k, idx := range order {
			a[k] = col4row[idx]
			b[k] = idx
		}
	} else {
		for i := 0; i < nr; i++ {
			a[i] = i
			b[i] = col4row[i]
		}
	}

	if subrows != nil || subcols != nil {
		for i := 0; i < nr; i++ {
			if subrows != nil {
				a[i] = subrows[a[i]]
			}
			if subcols != nil {
				b[i] = subcols[b[i]]
			}
		}
	}

	return a, b, nil
}

// kahanAdd adds delta to *sum using Kahan compensated summation, updating
// *comp with the running compensation term.
func kahanAdd(sum, comp *float64, delta float64) {
	y := delta - *comp
	t := *sum + y
	*comp = (t - *sum) - y
	*sum = t
}

// Solve solves the real-valued rectangular assignment problem for a dense
// row-major cost matrix, mirroring the reference solve() contract: on
// success it returns min(nr,nc) (row, column) pairs ordered ascending by
// row index of the original problem axis.
func Solve(cost [][]float64, maximize bool) (a, b []int, err error) {
	return SolveMatrix(cost, maximize)
}

// SolveMatrix solves the rectangular assignment problem for any numeric
// row-major cost matrix, expressed as one algorithm body instantiated over
// many numeric kinds via Go generics — the idiomatic-Go analogue of the
// reference algorithm's templated element-type dispatch (see DESIGN.md).
func SolveMatrix[T Numeric](cost [][]T, maximize bool, opts ...Option) (a, b []int, err error) {
	nrRaw := len(cost)
	ncRaw := 0
	if nrRaw > 0 {
		ncRaw = len(cost[0])
	}
	flat := make([]T, nrRaw*ncRaw)
	for i, row := range cost {
		if len(row) != ncRaw {
			return nil, nil, ErrInvalidCost
		}
		copy(flat[i*ncRaw:(i+1)*ncRaw], row)
	}
	return solveCore(nrRaw, ncRaw, readerFromSlice(flat), maximize, resolveOptions(opts))
}

// SolveBoolMatrix solves the rectangular assignment problem for a row-major
// [][]bool cost matrix (true promotes to 1, false to 0). Bool is handled
// separately from SolveMatrix because Go does not permit numeric conversion
// of bool, so it cannot satisfy the Numeric constraint.
func SolveBoolMatrix(cost [][]bool, maximize bool, opts ...Option) (a, b []int, err error) {
	nrRaw := len(cost)
	ncRaw := 0
	if nrRaw > 0 {
		ncRaw = len(cost[0])
	}
	flat := make([]bool, nrRaw*ncRaw)
	for i, row := range cost {
		if len(row) != ncRaw {
			return nil, nil, ErrInvalidCost
		}
		copy(flat[i*ncRaw:(i+1)*ncRaw], row)
	}
	return solveCore(nrRaw, ncRaw, readerFromBools(flat), maximize, resolveOptions(opts))
}

// SolveDType solves the rectangular assignment problem for a flat,
// row-major cost buffer tagged with a DType, mirroring the reference
// solve_dtype() contract. data must dynamically be the slice type DType
// promises (e.g. []int32 for DTypeInt32); a mismatch or an unrecognized
// dtype returns ErrDTypeInvalid.
func SolveDType(nr, nc int, data any, dtype DType, maximize bool, opts ...Option) (a, b []int, err error) {
	read, err := readerFromDType(data, dtype)
	if err != nil {
		return nil, nil, err
	}
	return solveCore(nr, nc, read, maximize, resolveOptions(opts))
}
