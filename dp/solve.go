package dp

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/katalvlaran/paretodp/cost"
	"github.com/katalvlaran/paretodp/matrix"
	"github.com/katalvlaran/paretodp/parallel"
)

// Solve runs validate → sort → fill → backtrack → finalize.
//
// Errors:
//   - ErrInvalidConfiguration: no points or K <= 0; nothing is computed.
//   - ErrPartitionInfeasible: K > N or a dead-end during backtracking; the
//     partial Solution is still published.
//   - ErrDegenerate: the partition is complete but its cost is not finite.
//   - ErrIndexOutOfRange: internal bound violation (a bug).
func (e *Engine) Solve() error {
	start := time.Now()
	err := e.solve()

	status := e.sol.Status.String()
	if e.sol.Status == StatusNone {
		status = "invalid"
	}
	e.rec.ObserveSolve(e.criterion.String(), status, time.Since(start).Seconds())
	log := e.log.WithK(e.k)
	if e.points != nil {
		log = log.WithN(e.points.N())
	}
	log.LogSolve(e.sol.Cost, len(e.sol.Intervals), err)

	return err
}

func (e *Engine) solve() error {
	e.reset()
	if err := e.validate(); err != nil {
		return err
	}

	e.points.EnsureSorted()
	e.points.ResetLabels()
	e.state = Sorted

	n := e.points.N()
	oracle, err := cost.New(e.criterion, e.points, cost.Options{
		Incremental: e.opts.Incremental,
		Workers:     1, // columns are already spread over the workers
	})
	if err != nil {
		return err
	}
	e.oracle = oracle

	// Rows beyond N can never hold a finite value; they stay virtual.
	rows := min(e.k, n)
	if e.table, err = matrix.NewFilled(rows, n, math.Inf(1)); err != nil {
		return err
	}
	if err = e.fillRow0(); err != nil {
		return err
	}
	if err = e.fillRows(); err != nil {
		return err
	}
	e.rec.AddCells(e.criterion.String(), cellCount(e.table.Shape()))
	e.state = MatrixFilled

	intervals, complete := e.backtrack()
	e.state = Backtracked

	if err = e.label(intervals); err != nil {
		return err
	}

	return e.finalize(intervals, complete)
}

// validate rejects configurations no table can be built for.
func (e *Engine) validate() error {
	if e.points == nil || e.points.N() == 0 {
		return fmt.Errorf("%w: no points", ErrInvalidConfiguration)
	}
	if e.k <= 0 {
		return fmt.Errorf("%w: cluster count %d", ErrInvalidConfiguration, e.k)
	}

	return nil
}

// cellCount is the number of computed cells for a rows×n table.
func cellCount(rows, n int) int {
	total := n
	for k := 1; k < rows; k++ {
		total += n - k
	}

	return total
}

// fillRow0 sets M[0][n] = cost(0..n).
func (e *Engine) fillRow0() error {
	n := e.points.N()
	prefix := e.oracle.CostsFromStart(n, nil)
	for j, v := range prefix {
		if err := e.table.Set(0, j, v); err != nil {
			return err
		}
	}
	e.log.Debug("row filled", "row", 0)

	return nil
}

// fillRows computes rows 1..rows-1. Every column of a row is independent
// given the previous row, so columns are split across workers; parallel.For
// returning is the barrier before the next row starts.
func (e *Engine) fillRows() error {
	n := e.points.N()
	workers := parallel.Workers(e.opts.Workers)
	trace := e.log.TraceEnabled()

	for k := 1; k < e.table.Rows(); k++ {
		prev, err := e.table.Row(k - 1)
		if err != nil {
			return err
		}

		err = parallel.For(k, n, workers, func(lo, hi int) error {
			// Chunk-local scratch: one length vector reused per column.
			scratch := make([]float64, 0, n-k+1)
			for col := lo; col < hi; col++ {
				scratch = e.oracle.CostsEndingAt(col, col-k+1, scratch)
				best, split := bestSplit(prev, scratch, k, col, 1)
				if split < 0 {
					continue // stays +Inf
				}
				if err := e.table.Set(k, col, best); err != nil {
					return err
				}
				if trace {
					e.log.Trace("cell", "row", k, "col", col, "cost", best, "split", split)
				}
			}

			return nil
		})
		if err != nil {
			return err
		}
		e.log.Debug("row filled", "row", k)
	}

	return nil
}

// bestSplit minimizes prev[split] + lengths[n-split-1] over split in
// [k-1, n-1], considering only candidates whose two operands are finite.
// Returns (+Inf, -1) when no candidate qualifies; exact ties keep the
// lowest split whatever the worker count.
func bestSplit(prev, lengths []float64, k, n, workers int) (float64, int) {
	return parallel.MinReduce(k-1, n, workers, func(split int) float64 {
		left, right := prev[split], lengths[n-split-1]
		if !finite(left) || !finite(right) {
			return math.Inf(1)
		}

		return left + right
	})
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

// backtrack walks from (K-1, N-1) towards row 0, re-deriving each minimizing
// split. It returns the reconstructed intervals in ascending order and
// whether they cover [0, N). On a dead end the suffix found so far is kept.
func (e *Engine) backtrack() ([]Interval, bool) {
	n := e.points.N() - 1
	k := e.k - 1
	var rev []Interval
	var scratch []float64
	workers := parallel.Workers(e.opts.Workers)

	for k > 0 {
		if !e.filled(k, n) {
			e.log.Warn("backtrack left the filled region", "row", k, "col", n)
			break
		}
		prev, err := e.table.Row(k - 1)
		if err != nil {
			break
		}
		scratch = e.oracle.CostsEndingAt(n, n-k+1, scratch)
		// Backtracking is a single chain, so the split search itself fans out.
		_, split := bestSplit(prev, scratch, k, n, workers)
		if split < 0 {
			e.log.Warn("backtrack dead end", "row", k, "col", n)
			break
		}
		rev = append(rev, Interval{Start: split + 1, End: n})
		n = split
		k--
	}

	complete := k == 0
	if complete {
		rev = append(rev, Interval{Start: 0, End: n})
	}
	slices.Reverse(rev)

	return rev, complete
}

// label writes 1-based cluster ids onto the sorted points, in interval order.
func (e *Engine) label(intervals []Interval) error {
	for id, iv := range intervals {
		for i := iv.Start; i <= iv.End; i++ {
			if err := e.points.SetLabel(i, id+1); err != nil {
				return fmt.Errorf("dp: label point %d: %w", i, err)
			}
		}
	}

	return nil
}

// finalize publishes the Solution and maps its status to an error.
func (e *Engine) finalize(intervals []Interval, complete bool) error {
	n := e.points.N()
	c, cellErr := e.CellErr(e.k-1, n-1)

	e.sol = Solution{
		Labels:    e.points.Labels(),
		Cost:      c,
		Intervals: intervals,
		Complete:  complete,
	}
	e.state = Finalized

	switch {
	case cellErr != nil:
		e.sol.Status = StatusDegenerate
		return fmt.Errorf("%w: %d clusters over %d points", ErrPartitionInfeasible, e.k, n)
	case !complete:
		e.sol.Status = StatusInfeasible
		return fmt.Errorf("%w: reconstructed %d of %d intervals", ErrPartitionInfeasible, len(intervals), e.k)
	case !finite(c):
		e.sol.Status = StatusDegenerate
		return fmt.Errorf("%w: optimal cost %v", ErrDegenerate, c)
	default:
		e.sol.Status = StatusOptimal
		return nil
	}
}
