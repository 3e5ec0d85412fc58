// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major numeric storage used as the
// default backing for an lsap cost matrix, plus the small safety surface
// (bounds-checked At/Set, a NaN/Inf ingestion policy) that the rest of the
// module builds on.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Data: O(1); Clone: O(r*c).
package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxApply = "Apply"
)

// denseErrorf wraps a sentinel with a uniform "Dense.<method>(row,col)"
// context so callers can grep logs for the offending coordinate.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values: data holds r*c elements at
// offset row*c+col. It is the concrete Matrix implementation matconv.FromDense
// reads its cost data from before forwarding into lsap.SolveDType.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool // when true, Set/Apply reject non-finite results
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix. rows and cols must both be positive;
// use NewDenseZeroOK for the legal 0×n / n×0 edge case used internally by
// matconv when ingesting an empty cost matrix. By default Set/Apply reject
// NaN/±Inf; pass WithNoValidateNaNInf to relax that for a matrix that will
// legitimately carry forbidden-pairing infinities.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	cfg := newDenseConfig(opts)
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: cfg.validateNaNInf}, nil
}

// NewDenseZeroOK allows rows==0 or cols==0, used when ingesting an empty
// cost matrix (nr==0 or nc==0 is a legal, trivially-solved LSAP instance).
func NewDenseZeroOK(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	cfg := newDenseConfig(opts)
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: cfg.validateNaNInf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows(), Cols()) in one call. Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}
	return row*m.c + col, nil
}

// At returns the value at (row, col), or ErrOutOfRange if out of bounds.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	return m.data[off], nil
}

// Set stores v at (row, col). When the matrix's numeric policy is enabled,
// a NaN or ±Inf value is rejected with ErrNaNInf rather than stored. This is
// stricter than lsap's own check at the solver boundary, which rejects NaN,
// -Inf while minimizing and +Inf while maximizing.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v
	return nil
}

// Clone returns a deep, independent copy. Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// String renders the matrix row by row, for diagnostics only — not
// intended for hot paths or large matrices.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		base := i * m.c
		for j := 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// Do visits every element in row-major order, stopping early if f returns
// false. Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces every element with f(i,j,v) in place, in row-major order.
// If the numeric policy is enabled and f produces a non-finite result, Apply
// aborts and returns ErrNaNInf; elements written before the failing one
// remain updated.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			nv := f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}
	return nil
}

// Data returns the underlying row-major backing slice, without copying.
// This is the zero-copy handoff point matconv uses to build an lsap cost
// view directly over a Dense matrix's storage.
func (m *Dense) Data() []float64 {
	return m.data
}
