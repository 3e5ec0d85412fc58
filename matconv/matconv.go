// Package matconv adapts external matrix representations — this module's
// own matrix.Dense, and gonum's mat.Matrix — into the flat, row-major
// buffers lsap.SolveDType consumes, so callers already holding a matrix in
// one of those forms never have to unpack it into a [][]float64 by hand.
package matconv

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rectassign/lsap"
	"github.com/katalvlaran/rectassign/matrix"
)

// FromDense solves the rectangular assignment problem directly against a
// matrix.Dense's backing storage, without copying it into a [][]float64
// first.
func FromDense(m *matrix.Dense, maximize bool, opts ...lsap.Option) (a, b []int, err error) {
	rows, cols := m.Shape()
	return lsap.SolveDType(rows, cols, m.Data(), lsap.DTypeFloat64, maximize, opts...)
}

// FromGonum solves the rectangular assignment problem against any gonum
// mat.Matrix (mat.Dense, a view, or a computed expression), flattening it
// into a row-major float64 buffer first since gonum does not expose its
// backing array through a common interface.
func FromGonum(m mat.Matrix, maximize bool, opts ...lsap.Option) (a, b []int, err error) {
	rows, cols := m.Dims()
	flat := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			flat[base+j] = m.At(i, j)
		}
	}
	return lsap.SolveDType(rows, cols, flat, lsap.DTypeFloat64, maximize, opts...)
}

// ToDense copies an lsap-compatible flat row-major float64 buffer into a new
// matrix.Dense, the inverse of FromDense's Data() handoff — useful when a
// caller wants to keep mutating a cost matrix through the Matrix interface
// after building it from a solver-shaped source.
func ToDense(rows, cols int, flat []float64) (*matrix.Dense, error) {
	if rows == 0 || cols == 0 {
		return matrix.NewDenseZeroOK(rows, cols)
	}
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			if err := m.Set(i, j, flat[base+j]); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
