// Package verify recomputes the cost of a labeling independently of the
// dynamic program and compares it with the reported optimum.
//
// It is a diagnostic: every cluster is re-evaluated by brute force over its
// members, so it costs O(Σ|cluster|²·D) and is not on the solve path.
package verify

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/paretodp/cost"
	"github.com/katalvlaran/paretodp/dp"
	"github.com/katalvlaran/paretodp/pointset"
)

// Tolerance is the absolute difference above which a verified cost is
// reported as a mismatch.
const Tolerance = 1e-6

var (
	// ErrCostMismatch means the recomputed cost differs from the reported one.
	ErrCostMismatch = errors.New("verify: cost mismatch")

	// ErrLabelCount means the label slice does not cover the point set.
	ErrLabelCount = errors.New("verify: label count does not match point count")
)

// Cost groups points by label and sums the best single-exemplar cost of every
// realized cluster. Unassigned points (label 0) are ignored. Clusters are
// summed in ascending label order so the result is deterministic.
func Cost(ps *pointset.PointSet, labels []int, c cost.Criterion) (float64, error) {
	if len(labels) != ps.N() {
		return 0, fmt.Errorf("%w: %d labels, %d points", ErrLabelCount, len(labels), ps.N())
	}

	members := make(map[int][]int)
	for i, id := range labels {
		if id == pointset.Unassigned {
			continue
		}
		members[id] = append(members[id], i)
	}
	ids := make([]int, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	parts := make([]float64, len(ids))
	for j, id := range ids {
		parts[j] = cost.ExemplarCost(c, ps, members[id])
	}

	return floats.Sum(parts), nil
}

// Check compares a reported cost with a verified one.
func Check(reported, verified float64) error {
	if math.IsInf(reported, 1) && math.IsInf(verified, 1) {
		return nil
	}
	if diff := math.Abs(reported - verified); !(diff < Tolerance) {
		return fmt.Errorf("%w: reported %.6f, verified %.6f (diff %.3g)",
			ErrCostMismatch, reported, verified, diff)
	}

	return nil
}

// Solution recomputes the cost of e's last solution and checks it against
// SolutionCost. It returns the verified cost alongside any mismatch.
func Solution(e *dp.Engine) (float64, error) {
	ps := e.Points()
	if ps == nil {
		return 0, fmt.Errorf("verify: %w", dp.ErrInvalidConfiguration)
	}
	verified, err := Cost(ps, e.ClusterAssignment(), e.Criterion())
	if err != nil {
		return 0, err
	}

	return verified, Check(e.SolutionCost(), verified)
}
