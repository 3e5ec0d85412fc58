package lsap

// DType tags the numeric kind of the flat data buffer passed to SolveDType,
// mirroring the enumerated element-type contract of the reference algorithm.
// The zero value is intentionally unused so a missing tag is caught as
// ErrDTypeInvalid rather than silently treated as Bool.
type DType int

const (
	_ DType = iota // reserve the zero value; an unset DType is invalid

	// DTypeBool tags a []bool buffer; true promotes to 1, false to 0.
	DTypeBool
	// DTypeInt8 tags a []int8 buffer.
	DTypeInt8
	// DTypeInt16 tags a []int16 buffer.
	DTypeInt16
	// DTypeInt32 tags a []int32 buffer.
	DTypeInt32
	// DTypeInt64 tags a []int64 buffer.
	DTypeInt64
	// DTypeUint8 tags a []uint8 buffer.
	DTypeUint8
	// DTypeUint16 tags a []uint16 buffer.
	DTypeUint16
	// DTypeUint32 tags a []uint32 buffer.
	DTypeUint32
	// DTypeUint64 tags a []uint64 buffer.
	DTypeUint64
	// DTypeFloat32 tags a []float32 buffer.
	DTypeFloat32
	// DTypeFloat64 tags a []float64 buffer.
	DTypeFloat64
)

// String returns a human-readable name for the DType.
func (d DType) String() string {
	switch d {
	case DTypeBool:
		return "bool"
	case DTypeInt8:
		return "int8"
	case DTypeInt16:
		return "int16"
	case DTypeInt32:
		return "int32"
	case DTypeInt64:
		return "int64"
	case DTypeUint8:
		return "uint8"
	case DTypeUint16:
		return "uint16"
	case DTypeUint32:
		return "uint32"
	case DTypeUint64:
		return "uint64"
	case DTypeFloat32:
		return "float32"
	case DTypeFloat64:
		return "float64"
	default:
		return "invalid"
	}
}

// Numeric constrains the element type accepted by SolveMatrix: booleans are
// excluded because they do not participate in Go's numeric conversions the
// way the other kinds do (see SolveBoolMatrix for a bool-specific adapter).
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Options configures subscripting and numerical behavior shared by
// SolveDType and SolveMatrix. The zero value performs no subscripting and
// uses plain (non-Kahan) dual-variable updates.
//
//   - Subrows / Subcols: optional row/column index selectors. When present,
//     the solver operates only on those rows/columns, in the given order;
//     repetition is legal (see the package-level Open Question note in
//     DESIGN.md on repeated physical rows).
//   - Kahan: if true, dual-variable updates accumulate with Kahan summation
//     to bound floating-point drift on pathological, wide-dynamic-range
//     inputs. Default is false, matching the reference algorithm.
type Options struct {
	Subrows []int
	Subcols []int
	Kahan   bool
}

// Option is a functional option for configuring Solve behavior.
type Option func(*Options)

// WithSubrows installs a row-index selector: the solver will see only rows
// subrows[0], subrows[1], … in that order. Each entry must lie in [0, nr);
// out-of-range entries surface as ErrSubscriptInvalid. Repetition is legal.
func WithSubrows(subrows []int) Option {
	return func(o *Options) {
		o.Subrows = subrows
	}
}

// WithSubcols installs a column-index selector: the solver will see only
// columns subcols[0], subcols[1], … in that order. Each entry must lie in
// [0, nc); out-of-range entries surface as ErrSubscriptInvalid. Repetition
// is legal.
func WithSubcols(subcols []int) Option {
	return func(o *Options) {
		o.Subcols = subcols
	}
}

// WithKahanSummation enables Kahan-compensated summation in the dual-variable
// update step. The reference algorithm does not do this; enable it only when
// solving matrices with very large dynamic range where accumulated
// floating-point error could otherwise violate dual feasibility by more than
// a few ULPs.
func WithKahanSummation() Option {
	return func(o *Options) {
		o.Kahan = true
	}
}

// resolveOptions applies opts over the zero-value Options and returns the
// result. Kept as a separate step (rather than inlined at each call site) so
// SolveDType and SolveMatrix apply defaults identically.
func resolveOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
