package cost

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCriterion is returned for a criterion name or value that does not
// map to an oracle.
var ErrUnknownCriterion = errors.New("cost: unknown criterion")

// Criterion selects the exemplar cost definition.
type Criterion int

const (
	// Medoids sums squared Euclidean distances to the exemplar.
	Medoids Criterion = iota

	// Median sums plain Euclidean distances to the exemplar.
	Median
)

// String returns the lower-case criterion name.
func (c Criterion) String() string {
	switch c {
	case Medoids:
		return "medoids"
	case Median:
		return "median"
	default:
		return fmt.Sprintf("criterion(%d)", int(c))
	}
}

// ParseCriterion maps "medoids"/"k-medoids" and "median"/"p-median"
// (case-insensitive) to a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medoids", "k-medoids", "kmedoids":
		return Medoids, nil
	case "median", "p-median", "pmedian":
		return Median, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
	}
}

// Oracle answers interval cost queries for one criterion over one sorted
// PointSet.
type Oracle interface {
	// Criterion reports which cost definition the oracle evaluates.
	Criterion() Criterion

	// IntervalCost returns the best single-exemplar cost of [start, end];
	// 0 when start >= end.
	IntervalCost(start, end int) float64

	// CostsEndingAt fills dst[j] with the cost of the length-(j+1) interval
	// ending at i, for j in [0, maxLen); +Inf where the interval would start
	// before 0. dst is reused when its capacity suffices.
	CostsEndingAt(i, maxLen int, dst []float64) []float64

	// CostsFromStart fills dst[j] with the cost of [0, j] for j in
	// [0, maxLen); +Inf where j >= N.
	CostsFromStart(maxLen int, dst []float64) []float64
}

// Options tunes oracle evaluation. The zero value is valid and selects brute
// force, single-threaded evaluation.
type Options struct {
	// Incremental enables the additive sweep for Medoids. Ignored by Median.
	Incremental bool

	// Workers bounds the goroutines used for the exemplar search inside a
	// single IntervalCost call. <= 1 means sequential.
	Workers int

	// ParallelThreshold is the minimal interval length for which IntervalCost
	// fans the exemplar search out. <= 0 selects DefaultParallelThreshold.
	ParallelThreshold int
}

// DefaultParallelThreshold is the interval length above which a single
// exemplar search is worth splitting across goroutines.
const DefaultParallelThreshold = 256

// DefaultOptions returns incremental, sequential evaluation.
func DefaultOptions() Options {
	return Options{
		Incremental:       true,
		Workers:           1,
		ParallelThreshold: DefaultParallelThreshold,
	}
}
