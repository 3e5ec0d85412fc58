// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface and the numeric ingestion policy
// shared by every implementation.
package matrix

// DefaultValidateNaNInf is the numeric policy new Dense matrices are built
// with: Set and Apply reject NaN and ±Inf rather than silently storing a
// cost that would make the assignment problem ill-posed. A caller ingesting
// a cost matrix that legitimately carries +Inf entries for forbidden
// pairings — and intends to hand it to lsap, which validates NaN/±Inf
// itself with maximize-aware semantics — disables this policy at
// construction time with WithNoValidateNaNInf.
const DefaultValidateNaNInf = true

// Option configures a Dense under construction. With no options a Dense
// uses the DefaultValidateNaNInf policy; opts are applied in order.
type Option func(*denseConfig)

type denseConfig struct {
	validateNaNInf bool
}

func newDenseConfig(opts []Option) denseConfig {
	cfg := denseConfig{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithNoValidateNaNInf disables the NaN/±Inf ingestion policy on the Dense
// being constructed. Use this when the caller's own validation (or a
// downstream consumer's, such as lsap.validateCosts) already accounts for
// which infinities are legal, e.g. +Inf marking a forbidden pairing while
// minimizing.
func WithNoValidateNaNInf() Option {
	return func(c *denseConfig) { c.validateNaNInf = false }
}

// Matrix is a two-dimensional mutable array of float64 values, implemented
// by Dense. matconv does not go through this interface: it reads a Dense's
// backing slice via Shape and Data.
//
// Complexity notes: all methods are O(1) except Clone, which is O(rows*cols).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep, independent copy of the matrix.
	Clone() Matrix
}
