package lsap

// reader promotes the element at flat index idx (row*ncRaw+col in the raw,
// un-subscripted, un-transposed matrix) to the float64 working type. It is
// the only place element-type-specific code touches the cost data; every
// dtype in reader.go produces one of these closures.
type reader func(idx int) float64

// costView is the sole surface through which the solver reads costs. It
// composes subscript, transpose and negate in the fixed order required by
// §4.1: reordering would change which physical entries tie, and therefore
// which column the tie-break rule in the augmenting-path search selects.
//
// costView never copies the backing data; get is O(1).
type costView struct {
	read reader // raw element reader, indexed by (row*ncRaw + col)
	ncRaw int    // column count of the *raw*, un-subscripted matrix

	transpose bool
	negate    bool
	subrows   []int // nil means "no row subscript"
	subcols   []int // nil means "no column subscript"
}

// get returns the working-type cost at logical (i, j), applying transpose,
// then row subscript, then column subscript, then reading and optionally
// negating — exactly the order specified in §4.1.
func (v *costView) get(i, j int) float64 {
	if v.transpose {
		i, j = j, i
	}
	if v.subrows != nil {
		i = v.subrows[i]
	}
	if v.subcols != nil {
		j = v.subcols[j]
	}
	r := v.read(i*v.ncRaw + j)
	if v.negate {
		return -r
	}
	return r
}
