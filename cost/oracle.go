package cost

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paretodp/parallel"
	"github.com/katalvlaran/paretodp/pointset"
)

// New builds the oracle for criterion c over ps. The concrete implementation
// is fixed here; callers only see the Oracle interface.
//
// ps must already be sorted when the oracle feeds an interval DP.
func New(c Criterion, ps *pointset.PointSet, opts Options) (Oracle, error) {
	if ps == nil {
		return nil, fmt.Errorf("cost: nil point set")
	}
	if opts.ParallelThreshold <= 0 {
		opts.ParallelThreshold = DefaultParallelThreshold
	}
	b := base{ps: ps, workers: opts.Workers, threshold: opts.ParallelThreshold}

	switch c {
	case Medoids:
		b.dist = ps.SquaredDistance
		return &MedoidsOracle{base: b, incremental: opts.Incremental}, nil
	case Median:
		b.dist = ps.Distance
		return &MedianOracle{base: b}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCriterion, int(c))
	}
}

// base carries what both variants share: the point set, the pairwise
// distance of the criterion and the exemplar-search parallelism.
type base struct {
	ps        *pointset.PointSet
	dist      func(i, j int) float64
	workers   int
	threshold int
}

// IntervalCost tries every member of [start, end] as exemplar.
// Complexity: O(len²·D).
func (b *base) IntervalCost(start, end int) float64 {
	if start >= end {
		return 0
	}
	candidate := func(c int) float64 {
		var sum float64
		for j := start; j <= end; j++ {
			if j != c {
				sum += b.dist(j, c)
			}
		}

		return sum
	}

	var best float64
	if b.workers > 1 && end-start+1 >= b.threshold {
		best, _ = parallel.MinReduce(start, end+1, b.workers, candidate)
	} else {
		best, _ = parallel.ArgMin(start, end+1, candidate)
	}

	return best
}

// bruteEndingAt evaluates every length ending at i independently.
func (b *base) bruteEndingAt(i, maxLen int, dst []float64) []float64 {
	dst = resize(dst, maxLen)
	for j := range dst {
		if start := i - j; start >= 0 && i < b.ps.N() {
			dst[j] = b.IntervalCost(start, i)
		} else {
			dst[j] = math.Inf(1)
		}
	}

	return dst
}

// bruteFromStart evaluates every prefix independently.
func (b *base) bruteFromStart(maxLen int, dst []float64) []float64 {
	dst = resize(dst, maxLen)
	for j := range dst {
		if j < b.ps.N() {
			dst[j] = b.IntervalCost(0, j)
		} else {
			dst[j] = math.Inf(1)
		}
	}

	return dst
}

// resize returns dst with length n, allocating only when capacity is short.
func resize(dst []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	if cap(dst) < n {
		return make([]float64, n)
	}

	return dst[:n]
}
