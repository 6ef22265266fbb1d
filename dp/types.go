package dp

import (
	"fmt"

	"github.com/katalvlaran/paretodp/logging"
	"github.com/katalvlaran/paretodp/metrics"
)

// State is the engine lifecycle stage.
type State int

const (
	// Uninitialized: no solve has progressed past validation.
	Uninitialized State = iota
	// Sorted: points are ascending on coordinate 0.
	Sorted
	// MatrixFilled: every reachable cost-table cell is computed.
	MatrixFilled
	// Backtracked: intervals are reconstructed (possibly partially).
	Backtracked
	// Finalized: labels and cost are published.
	Finalized
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Sorted:
		return "sorted"
	case MatrixFilled:
		return "matrix-filled"
	case Backtracked:
		return "backtracked"
	case Finalized:
		return "finalized"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Status classifies a finalized Solution.
type Status int

const (
	// StatusNone: no solve has finished.
	StatusNone Status = iota
	// StatusOptimal: complete partition with finite optimal cost.
	StatusOptimal
	// StatusInfeasible: backtracking dead-ended; intervals are partial.
	StatusInfeasible
	// StatusDegenerate: the final cell is outside the filled region (K > N)
	// or not finite; Cost is +Inf.
	StatusDegenerate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusDegenerate:
		return "degenerate"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Interval is a 0-indexed inclusive run [Start, End] of sorted points
// assigned to one cluster.
type Interval struct {
	Start, End int
}

// Len returns the number of points in the interval.
func (iv Interval) Len() int { return iv.End - iv.Start + 1 }

// String formats the interval as [start, end].
func (iv Interval) String() string { return fmt.Sprintf("[%d, %d]", iv.Start, iv.End) }

// Solution is the published result of one solve.
type Solution struct {
	// Labels[i] is the cluster id (1-based) of sorted point i; 0 = unassigned.
	Labels []int

	// Cost is M[K-1][N-1], or +Inf when that cell is out of range.
	Cost float64

	// Intervals are ascending and, when Complete, partition [0, N).
	Intervals []Interval

	// Complete is false when backtracking stopped early.
	Complete bool

	// Status classifies the outcome.
	Status Status
}

// Options configures an Engine.
//
// Fields:
//   - Workers    : goroutines per DP row (columns run in parallel);
//     0 means runtime.NumCPU(), 1 forces sequential filling.
//   - Incremental: use the additive O(len) recurrence of the Medoids oracle.
//   - Logger     : optional observability hook; nil discards everything.
//   - Recorder   : optional metrics sink; nil discards everything.
type Options struct {
	Workers     int
	Incremental bool
	Logger      *logging.Logger
	Recorder    metrics.Recorder
}

// DefaultOptions returns parallel, incremental solving without logging.
func DefaultOptions() Options {
	return Options{
		Workers:     0,
		Incremental: true,
	}
}
