package dp

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/paretodp/cost"
	"github.com/katalvlaran/paretodp/logging"
	"github.com/katalvlaran/paretodp/matrix"
	"github.com/katalvlaran/paretodp/metrics"
	"github.com/katalvlaran/paretodp/pointset"
)

// Engine owns one point set, one criterion and the cost table of the last
// solve. A solve is a linear pass through the State values; calling Solve
// again discards the previous table and Solution wholesale.
//
// An Engine is not safe for concurrent use. Parallelism lives inside Solve.
type Engine struct {
	criterion cost.Criterion
	opts      Options
	log       *logging.Logger
	rec       metrics.Recorder

	points *pointset.PointSet
	k      int

	state  State
	oracle cost.Oracle
	table  *matrix.Dense
	sol    Solution
}

// New returns an Engine for criterion c. Zero-valued hooks in opts are
// replaced by no-op implementations.
func New(c cost.Criterion, opts Options) *Engine {
	e := &Engine{
		criterion: c,
		opts:      opts,
		log:       logging.OrNoop(opts.Logger).WithCriterion(c.String()),
		rec:       metrics.OrNop(opts.Recorder),
	}
	e.reset()

	return e
}

// Import loads a point file (see pointset.Import) and makes it the engine's
// input. Any previous solution is discarded.
func (e *Engine) Import(path string) error {
	ps, err := pointset.Import(path)
	if err != nil {
		e.log.Error("import failed", "file", path, "error", err)
		return err
	}
	e.log.WithFile(path).WithN(ps.N()).Debug("imported points", "d", ps.D())
	e.SetPoints(ps)

	return nil
}

// SetPoints makes ps the engine's input. The engine sorts and labels ps in
// place during Solve; callers that need the original order keep a Clone or
// use ps.LabelsInInputOrder.
func (e *Engine) SetPoints(ps *pointset.PointSet) {
	e.points = ps
	e.reset()
}

// SetClusterCount sets K. Validation happens at Solve.
func (e *Engine) SetClusterCount(k int) {
	e.k = k
	e.reset()
}

// DefaultClusterCount returns max(3, floor(sqrt(n))).
func DefaultClusterCount(n int) int {
	return max(3, int(math.Sqrt(float64(n))))
}

// SetDefaultClusterCount sets K from the loaded point count and returns it.
// For n < 3 the result exceeds n and the next Solve reports
// ErrPartitionInfeasible.
func (e *Engine) SetDefaultClusterCount() int {
	n := 0
	if e.points != nil {
		n = e.points.N()
	}
	e.SetClusterCount(DefaultClusterCount(n))

	return e.k
}

// reset drops every derived artifact.
func (e *Engine) reset() {
	e.state = Uninitialized
	e.oracle = nil
	e.table = nil
	e.sol = Solution{Cost: math.Inf(1)}
}

// Criterion returns the engine's cost criterion.
func (e *Engine) Criterion() cost.Criterion { return e.criterion }

// ClusterCount returns the configured K.
func (e *Engine) ClusterCount() int { return e.k }

// Points returns the engine's point set (nil before Import/SetPoints).
func (e *Engine) Points() *pointset.PointSet { return e.points }

// State returns the lifecycle stage reached by the last Solve.
func (e *Engine) State() State { return e.state }

// SolutionCost returns M[K-1][N-1] of the last solve, or +Inf.
func (e *Engine) SolutionCost() float64 { return e.sol.Cost }

// ClusterAssignment returns a copy of the per-point labels in sorted order.
func (e *Engine) ClusterAssignment() []int { return slices.Clone(e.sol.Labels) }

// Intervals returns a copy of the reconstructed intervals.
func (e *Engine) Intervals() []Interval { return slices.Clone(e.sol.Intervals) }

// PointCoordinates returns the sorted coordinates in row-major order, or nil
// when no points are loaded.
func (e *Engine) PointCoordinates() []float64 {
	if e.points == nil {
		return nil
	}

	return e.points.Coords()
}

// Solution returns a copy of the last published result.
func (e *Engine) Solution() Solution {
	s := e.sol
	s.Labels = slices.Clone(s.Labels)
	s.Intervals = slices.Clone(s.Intervals)

	return s
}

// filled reports whether (k, n) belongs to the computed region of the table:
// row 0 everywhere, row k>0 from column k on.
func (e *Engine) filled(k, n int) bool {
	if e.table == nil || e.state < MatrixFilled || !e.table.Contains(k, n) {
		return false
	}

	return k == 0 || n >= k
}

// Cell returns M[k][n], or +Inf for anything outside the filled region.
func (e *Engine) Cell(k, n int) float64 {
	v, err := e.CellErr(k, n)
	if err != nil {
		return math.Inf(1)
	}

	return v
}

// CellErr is Cell with the out-of-region case reported as ErrDegenerate.
func (e *Engine) CellErr(k, n int) (float64, error) {
	if !e.filled(k, n) {
		return math.Inf(1), fmt.Errorf("%w: cell (%d,%d)", ErrDegenerate, k, n)
	}

	return e.table.At(k, n)
}

// ParetoFront returns the optimal cost for every cluster count 1..K, i.e.
// the last column of the table. Entries for counts above N are +Inf. Returns
// nil before the table is filled.
func (e *Engine) ParetoFront() []float64 {
	if e.state < MatrixFilled || e.points == nil {
		return nil
	}
	last, err := e.table.Col(e.points.N() - 1)
	if err != nil {
		return nil
	}
	front := make([]float64, e.k)
	copy(front, last)
	for k := len(last); k < e.k; k++ {
		front[k] = math.Inf(1)
	}

	return front
}

// Table returns a copy of the cost table, or nil before it is filled. Rows
// above N are not materialized.
func (e *Engine) Table() *matrix.Dense {
	if e.table == nil || e.state < MatrixFilled {
		return nil
	}

	return e.table.Clone()
}
