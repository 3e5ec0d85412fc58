// Package matrix provides the dense numeric storage the rest of this module
// uses to hold a cost matrix before it reaches the lsap solver: bounds-safe
// element access, an optional NaN/Inf ingestion policy, the small Matrix
// interface, and the zero-copy Data slice matconv hands to the solver.
//
// It carries no notion of an assignment or an augmenting path — that lives
// entirely in lsap. This package only answers "what is at (i, j)" and "is it
// finite", quickly and without surprises.
package matrix
