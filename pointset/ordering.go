package pointset

import (
	"cmp"
	"slices"
)

// IsSorted performs the O(N) ascending check on coordinate 0 and caches a
// positive outcome. Coordinates never change after construction except
// through EnsureSorted, so the cache stays valid.
func (ps *PointSet) IsSorted() bool {
	if ps.sorted {
		return true
	}
	for i := 1; i < ps.n; i++ {
		if ps.coords[(i-1)*ps.d] > ps.coords[i*ps.d] {
			return false
		}
	}
	ps.sorted = true

	return true
}

// EnsureSorted establishes ascending order on coordinate 0.
//
// Algorithm:
//  1. O(N) ascending check; no-op (and no allocation) when already sorted.
//  2. Stable permutation sorting positions by coordinate 0 (equal keys keep
//     their relative order, so the result is deterministic).
//  3. Rewrite coordinates and labels in that order and compose the stored
//     permutation so OriginalIndex keeps pointing at input positions.
//
// Idempotent: running it twice yields the same buffer as running it once.
// Labels keep referring to sorted positions; use LabelsInInputOrder to map
// them back.
//
// Complexity: O(N) sorted, O(N log N + N·D) otherwise.
func (ps *PointSet) EnsureSorted() {
	if ps.IsSorted() {
		return
	}

	idx := make([]int, ps.n)
	for i := range idx {
		idx[i] = i
	}
	d := ps.d
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(ps.coords[a*d], ps.coords[b*d])
	})

	coords := make([]float64, len(ps.coords))
	labels := make([]int, ps.n)
	perm := make([]int, ps.n)
	for i, src := range idx {
		copy(coords[i*d:(i+1)*d], ps.coords[src*d:(src+1)*d])
		labels[i] = ps.labels[src]
		perm[i] = ps.perm[src]
	}
	ps.coords, ps.labels, ps.perm = coords, labels, perm
	ps.sorted = true
}

// Permutation returns a copy of the sorted-position → input-index mapping.
// It is the identity until EnsureSorted reorders the points.
func (ps *PointSet) Permutation() []int {
	out := make([]int, ps.n)
	copy(out, ps.perm)

	return out
}

// OriginalIndex returns the input-order index of the point at sorted position i.
func (ps *PointSet) OriginalIndex(i int) int { return ps.perm[i] }

// LabelsInInputOrder returns the labels re-indexed by input position:
// out[OriginalIndex(i)] == Label(i).
func (ps *PointSet) LabelsInInputOrder() []int {
	out := make([]int, ps.n)
	for i, src := range ps.perm {
		out[src] = ps.labels[i]
	}

	return out
}
