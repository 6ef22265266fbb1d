// Package cost implements the single-exemplar interval cost oracles used by
// the interval dynamic program.
//
// 🚀 What is an interval cost?
//
//	For a contiguous run [start, end] of sorted points, pick one member as
//	exemplar and sum a per-criterion distance from every other member to it;
//	the interval cost is the minimum of that sum over all members.
//
// ✨ Criteria:
//   - Medoids — squared Euclidean distance (k-medoids). Supports an
//     incremental sweep: growing a window by one point adds one distance to
//     each existing candidate and one O(len) sum for the new candidate, so all
//     lengths ending at a fixed point cost O(maxLen²) instead of O(maxLen³).
//   - Median  — plain Euclidean distance (p-median). Brute force, O(len²) per
//     interval.
//
// ⚙️ Usage:
//
//	o, err := cost.New(cost.Medoids, ps, cost.DefaultOptions())
//	v := o.CostsEndingAt(n, maxLen, nil) // v[j] = cost of [n-j, n]
//	c := o.IntervalCost(0, 2)
//
// Oracles only read the PointSet and keep no mutable state, so one oracle may
// be queried from many goroutines at once.
package cost
