package cost

import (
	"math"

	"github.com/katalvlaran/paretodp/pointset"
)

// Metric returns the pairwise distance used by criterion c over ps, or nil for
// an unknown criterion.
func Metric(c Criterion, ps *pointset.PointSet) func(i, j int) float64 {
	switch c {
	case Medoids:
		return ps.SquaredDistance
	case Median:
		return ps.Distance
	default:
		return nil
	}
}

// ExemplarCost returns the best single-exemplar cost of an arbitrary member
// set (not necessarily contiguous) under criterion c, by linear scan over
// every member as candidate. Sets with fewer than two members cost 0.
//
// Complexity: O(len(members)²·D).
func ExemplarCost(c Criterion, ps *pointset.PointSet, members []int) float64 {
	if len(members) <= 1 {
		return 0
	}
	dist := Metric(c, ps)
	if dist == nil {
		return math.NaN()
	}

	best := math.Inf(1)
	for _, cand := range members {
		var sum float64
		for _, j := range members {
			if j != cand {
				sum += dist(j, cand)
			}
		}
		if sum < best {
			best = sum
		}
	}

	return best
}
