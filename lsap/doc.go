// Package lsap solves the rectangular Linear Sum Assignment Problem: given an
// nr×nc cost matrix, find an injective mapping of rows to columns (or columns
// to rows, when nc < nr) that minimizes — or maximizes — the sum of the
// selected entries.
//
// Overview:
//
//   - The solver implements the shortest-augmenting-path algorithm over dual
//     variables described by Crouse, "On implementing 2D rectangular assignment
//     algorithms", IEEE Trans. Aerospace and Electronic Systems 52(4):1679-1696,
//     2016, pp. 1685-1686. It runs in O(n²·m) time (n = min(nr,nc), m = max(nr,nc))
//     using O(nr+nc) auxiliary memory per augmenting-path search.
//   - The cost view never copies. A costView composes transpose, negate
//     and row/column subscripting on top of a caller-supplied reader, so
//     maximize/subscript support costs nothing at the algorithm level.
//     SolveDType reads the caller's flat buffer in place; Solve, SolveMatrix
//     and SolveBoolMatrix first flatten the [][]T input into one row-major
//     buffer.
//   - Costs may be supplied in any of the numeric kinds enumerated by DType;
//     promotion to the float64 working type happens once per read, at the
//     view boundary.
//
// When to use:
//
//   - Bipartite matching problems phrased as a dense cost matrix: task
//     assignment, sensor-to-track association, nearest-neighbor pairing under
//     a shared budget, and similar problems where every row must be paired
//     with a distinct column (or vice versa).
//   - As the exact core beneath a higher-level scoring or matching
//     application; this package does not concern itself with how the cost
//     matrix was produced, only with solving it optimally.
//
// Key features:
//
//   - SolveMatrix is a generic entry point over any numeric row-major
//     [][]T cost matrix; Solve and SolveDType mirror the flat-pointer C-style
//     contract (real-valued and type-tagged, respectively) for callers that
//     already carry a dtype tag or a flat buffer.
//   - Functional options (WithSubrows, WithSubcols, WithKahanSummation)
//     configure subscripting and numerical accuracy without changing the
//     function signature.
//   - Deterministic tie-breaking: on a constant cost matrix the solver
//     returns the identity assignment; on ties it prefers an unmatched
//     column, matching the reference algorithm's behavior on degenerate
//     inputs.
//
// Error handling (sentinel errors, see errors.go):
//
//   - ErrInvalidCost: the matrix contains NaN, or -Inf while minimizing, or
//     +Inf while maximizing.
//   - ErrInfeasible: no complete assignment of finite cost exists.
//   - ErrSubscriptInvalid: a subscript index is out of bounds, or a
//     subscript length is negative.
//   - ErrDTypeInvalid: an unrecognized DType tag, or one that does not match
//     the underlying data slice.
//
// Complexity and memory:
//
//   - Time: O(n²·m), n = min(nr,nc), m = max(nr,nc).
//   - Memory: O(nr+nc) scratch, reset at the start of each augmenting-path
//     search; SolveDType borrows the cost buffer without copying it, while
//     the [][]T entry points add one nr×nc flattened copy.
//
// Concurrency:
//
//   - A single call runs synchronously to completion on the caller's
//     goroutine; there are no cancellation points. Independent calls over
//     disjoint inputs may run concurrently; a costView must not be shared
//     across concurrent Solve calls that mutate the same backing array.
//
// See also:
//
//   - github.com/katalvlaran/rectassign/flow: a bipartite feasibility
//     pre-check callers can run before paying for a full solve.
package lsap
