// Package pointset holds an ordered set of N points in D dimensions together
// with their cluster assignment, and the ordering service the interval
// dynamic program depends on.
//
// 🚀 What is a PointSet?
//
//	A flat, row-major coordinate buffer of length N·D plus a label buffer of
//	length N (0 = unassigned, 1..K after a solve). Interval clustering only
//	makes sense once the points are ascending on coordinate 0, so EnsureSorted
//	establishes that order (idempotent, O(N) when already sorted).
//
// ✨ Key features:
//   - O(D) SquaredDistance / Distance between any two points
//   - stable sort on coordinate 0 with the applied permutation retained,
//     so labels can be mapped back to input order (LabelsInInputOrder)
//   - Read/Import of whitespace-delimited text ("N D x11 x12 ... xND"),
//     with transparent .gz / .zst decompression
//
// ⚙️ Usage:
//
//	ps, err := pointset.Import("data/instance.txt")
//	if err != nil {
//	  // errors.Is(err, pointset.ErrFormat) for malformed input
//	}
//	ps.EnsureSorted()
//	d := ps.Distance(0, 1)
package pointset
