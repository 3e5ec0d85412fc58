package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	charmlog "github.com/charmbracelet/log"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rectassign/flow"
	"github.com/katalvlaran/rectassign/lsap"
	"github.com/katalvlaran/rectassign/matconv"
	"github.com/katalvlaran/rectassign/matrix"
)

// costFile is the JSON document a solve invocation reads: a dense,
// row-major cost matrix plus the direction to optimize for.
type costFile struct {
	Cost     [][]float64 `json:"cost"`
	Maximize bool        `json:"maximize"`
}

// solveResult is the JSON document printed on success.
type solveResult struct {
	Rows      []int   `json:"rows"`
	Cols      []int   `json:"cols"`
	TotalCost float64 `json:"total_cost"`
}

func newSolveCmd() *cobra.Command {
	var (
		inputPath string
		maximize  bool
		subrows   []int
		subcols   []int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a cost matrix loaded from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			raw, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("cli: read %s: %w", inputPath, err)
			}
			var cf costFile
			if err := json.Unmarshal(raw, &cf); err != nil {
				return fmt.Errorf("cli: parse %s: %w", inputPath, err)
			}
			if cmd.Flags().Changed("maximize") {
				cf.Maximize = maximize
			}

			logger.Debug("loaded cost matrix", "rows", len(cf.Cost), "maximize", cf.Maximize)

			var opts []lsap.Option
			if len(subrows) > 0 {
				logDuplicates(logger, "rows", subrows)
				opts = append(opts, lsap.WithSubrows(subrows))
			}
			if len(subcols) > 0 {
				logDuplicates(logger, "cols", subcols)
				opts = append(opts, lsap.WithSubcols(subcols))
			}

			if err := validateCostMatrix(cf.Cost, cf.Maximize); err != nil {
				return fmt.Errorf("cli: solve: %w (status=%s)", err, lsap.StatusOf(err))
			}

			if err := checkFeasible(cmd.Context(), logger, cf, subrows, subcols); err != nil {
				return fmt.Errorf("cli: solve: %w (status=%s)", err, lsap.StatusOf(err))
			}

			dense, err := denseFromCost(cf.Cost)
			if err != nil {
				return fmt.Errorf("cli: solve: %w (status=%s)", err, lsap.StatusOf(err))
			}
			rows, cols, err := matconv.FromDense(dense, cf.Maximize, opts...)
			if err != nil {
				return fmt.Errorf("cli: solve: %w (status=%s)", err, lsap.StatusOf(err))
			}

			var total float64
			for k := range rows {
				total += cf.Cost[rows[k]][cols[k]]
			}
			logger.Info("solved", "pairs", len(rows), "total_cost", total)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(solveResult{Rows: rows, Cols: cols, TotalCost: total})
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a JSON file with {\"cost\": [][]float64, \"maximize\": bool}")
	cmd.Flags().BoolVar(&maximize, "maximize", false, "maximize total cost instead of minimizing (overrides the file's maximize field)")
	cmd.Flags().IntSliceVar(&subrows, "rows", nil, "optional row subscript: solve only these row indices, in this order")
	cmd.Flags().IntSliceVar(&subcols, "cols", nil, "optional column subscript: solve only these column indices, in this order")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// denseFromCost copies a JSON-decoded cost matrix into a matrix.Dense so the
// solve path exercises the same storage type a caller building a matrix
// incrementally through the matrix package would use, and matconv.FromDense
// carries it the rest of the way into lsap. Dense's own NaN/Inf policy is
// disabled here — a forbidden pairing while minimizing is legitimately
// +Inf, and validateCostMatrix (plus lsap.validateCosts once more, inside
// the solve itself) already enforces the maximize-aware rule Dense's blanket
// policy can't express.
func denseFromCost(cost [][]float64) (*matrix.Dense, error) {
	rows := len(cost)
	cols := 0
	if rows > 0 {
		cols = len(cost[0])
	}
	if rows == 0 || cols == 0 {
		return matrix.NewDenseZeroOK(rows, cols, matrix.WithNoValidateNaNInf())
	}
	d, err := matrix.NewDense(rows, cols, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	for i, row := range cost {
		for j, v := range row {
			if err := d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

// validateCostMatrix rejects NaN unconditionally, -Inf while minimizing, and
// +Inf while maximizing, over the full matrix regardless of any subscript —
// the same rule lsap.validateCosts enforces inside Solve, run here first so
// an ill-signed infinity is reported as ErrInvalidCost rather than being
// folded into the feasibility pre-check's forbidden-pairing predicate, which
// cannot distinguish "structurally forbidden" from "ill-posed".
func validateCostMatrix(cost [][]float64, maximize bool) error {
	for _, row := range cost {
		for _, v := range row {
			if math.IsNaN(v) {
				return lsap.ErrInvalidCost
			}
			if !maximize && math.IsInf(v, -1) {
				return lsap.ErrInvalidCost
			}
			if maximize && math.IsInf(v, 1) {
				return lsap.ErrInvalidCost
			}
		}
	}
	return nil
}

// checkFeasible runs the bipartite feasibility pre-check over the
// (possibly subscripted) working matrix before paying for the full solve.
// A pairing is allowed when its cost is finite, mirroring the +Inf
// forbidden-pairing convention the solver itself honors.
func checkFeasible(ctx context.Context, logger *charmlog.Logger, cf costFile, subrows, subcols []int) error {
	nr := len(cf.Cost)
	nc := 0
	if nr > 0 {
		nc = len(cf.Cost[0])
	}
	if len(subrows) > 0 {
		nr = len(subrows)
	}
	if len(subcols) > 0 {
		nc = len(subcols)
	}

	allowed := func(i, j int) bool {
		row := i
		if len(subrows) > 0 {
			row = subrows[i]
		}
		col := j
		if len(subcols) > 0 {
			col = subcols[j]
		}
		return !math.IsInf(cf.Cost[row][col], 0)
	}

	feasible, size, err := flow.BipartiteFeasible(ctx, nr, nc, allowed)
	if err != nil {
		return err
	}
	logger.Debug("bipartite feasibility pre-check", "feasible", feasible, "matching_size", size)
	if !feasible {
		return lsap.ErrInfeasible
	}
	return nil
}

// logDuplicates emits a debug line naming any physical index repeated in a
// subscript, since repetition is legal but often a caller mistake worth
// surfacing under --verbose.
func logDuplicates(logger interface{ Debugf(string, ...any) }, axis string, sub []int) {
	seen := mapset.NewSet[int]()
	dup := mapset.NewSet[int]()
	for _, idx := range sub {
		if !seen.Add(idx) {
			dup.Add(idx)
		}
	}
	if dup.Cardinality() > 0 {
		logger.Debugf("subscript %s repeats physical indices %v", axis, dup.ToSlice())
	}
}
