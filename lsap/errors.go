package lsap

import "errors"

// Status is a stable integer result code, mirrored from the reference
// C-style contract so callers that bridge to another runtime can propagate a
// flat status instead of an error value.
type Status int

const (
	// StatusOK indicates the solve succeeded.
	StatusOK Status = 0
	// StatusInvalid indicates the cost matrix contains NaN or an
	// ill-signed infinity (see ErrInvalidCost).
	StatusInvalid Status = 1
	// StatusInfeasible indicates no complete assignment exists.
	StatusInfeasible Status = 2
	// StatusSubscriptInvalid indicates a subscript index was out of bounds
	// or a subscript length was negative.
	StatusSubscriptInvalid Status = 3
	// StatusDTypeInvalid indicates an unrecognized DType tag.
	StatusDTypeInvalid Status = 4
)

// String returns a human-readable name for the status code.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusInvalid:
		return "INVALID"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusSubscriptInvalid:
		return "SUBSCRIPT_INVALID"
	case StatusDTypeInvalid:
		return "DTYPE_INVALID"
	default:
		return "UNKNOWN"
	}
}

// Sentinel errors returned by Solve, SolveMatrix and SolveDType. Callers
// should match against these with errors.Is; StatusOf recovers the
// corresponding stable Status code from any error returned by this package.
var (
	// ErrInvalidCost indicates the cost matrix contains a NaN entry, a
	// -Inf entry while minimizing, or a +Inf entry while maximizing.
	ErrInvalidCost = errors.New("lsap: cost matrix contains NaN or an ill-signed infinity")

	// ErrInfeasible indicates the cost matrix is well-formed but no
	// complete finite-cost assignment exists.
	ErrInfeasible = errors.New("lsap: no feasible assignment exists")

	// ErrSubscriptInvalid indicates a subrows/subcols index fell outside
	// [0, nr) / [0, nc), or a subscript length was negative.
	ErrSubscriptInvalid = errors.New("lsap: subscript index out of bounds or negative length")

	// ErrDTypeInvalid indicates an unrecognized DType tag, or one whose
	// Go type does not match the data slice passed to SolveDType.
	ErrDTypeInvalid = errors.New("lsap: unknown or mismatched dtype")
)

// StatusOf maps an error returned by this package to its stable Status
// code. It returns StatusOK for a nil error and StatusInvalid for any
// error not recognized as one of this package's sentinels, since an
// unrecognized error still means the caller must not read the output
// buffers.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrInfeasible):
		return StatusInfeasible
	case errors.Is(err, ErrSubscriptInvalid):
		return StatusSubscriptInvalid
	case errors.Is(err, ErrDTypeInvalid):
		return StatusDTypeInvalid
	case errors.Is(err, ErrInvalidCost):
		return StatusInvalid
	default:
		return StatusInvalid
	}
}
