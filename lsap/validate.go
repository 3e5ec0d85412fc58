package lsap

import "math"

// validateCosts scans every element of the raw (un-subscripted) matrix and
// rejects NaN unconditionally, -Inf while minimizing, and +Inf while
// maximizing — either extreme would make the objective unbounded or the
// problem ill-posed in the opposite direction. Per §4.3 this runs before
// subscript bounds are checked, over the full nrRaw×ncRaw matrix regardless
// of any subscript the caller supplied.
func validateCosts(read reader, nrRaw, ncRaw int, maximize bool) error {
	n := nrRaw * ncRaw
	for idx := 0; idx < n; idx++ {
		c := read(idx)
		if math.IsNaN(c) {
			return ErrInvalidCost
		}
		if !maximize && math.IsInf(c, -1) {
			return ErrInvalidCost
		}
		if maximize && math.IsInf(c, 1) {
			return ErrInvalidCost
		}
	}
	return nil
}

// validateSubscript checks a subscript vector against the raw axis length
// bound. A nil or zero-length subscript means "no subscript on this axis"
// and is always valid.
func validateSubscript(sub []int, bound int) error {
	for _, idx := range sub {
		if idx < 0 || idx >= bound {
			return ErrSubscriptInvalid
		}
	}
	return nil
}
