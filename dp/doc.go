// Package dp computes exact optimal interval partitions of a point set into K
// contiguous clusters by dynamic programming.
//
// 🚀 What does it solve?
//
//	Points are sorted on coordinate 0, then split into K runs ("intervals");
//	each run pays its best single-exemplar cost (k-medoids or p-median, see
//	package cost). The engine finds the split minimizing the total, and the
//	last column of its cost table gives the optimal cost for every cluster
//	count 1..K at once, one point per K on the cost/cluster-count Pareto front.
//
// Algorithm Outline:
//  1. validate: N>0 and K>0, else ErrInvalidConfiguration.
//  2. sort: PointSet.EnsureSorted.
//  3. row 0: M[0][n] = cost(0..n) via Oracle.CostsFromStart.
//  4. rows k=1..K-1, columns n=k..N-1:
//     M[k][n] = min_{split∈[k-1,n-1]} M[k-1][split] + cost(split+1..n)
//     with one Oracle.CostsEndingAt(n, n-k+1) per cell; lowest split wins
//     exact ties. Columns of a row run in parallel; row k starts only after
//     row k-1 is complete.
//  5. backtrack from (K-1, N-1), re-deriving each minimizing split.
//  6. label intervals 1..K ascending; cost = M[K-1][N-1].
//
// Complexity (N points, K clusters, D dimensions):
//   - Medoids, incremental: O(K·N²·D) time
//   - Median (brute force):  O(K·N³·D) time
//   - Memory: O(min(K,N)·N)
//
// ⚙️ Usage:
//
//	e := dp.New(cost.Medoids, dp.DefaultOptions())
//	if err := e.Import("data/instance.txt"); err != nil { ... }
//	e.SetDefaultClusterCount()
//	if err := e.Solve(); err != nil {
//	  // errors.Is(err, dp.ErrPartitionInfeasible): e.Solution() holds the
//	  // longest partial partition reconstructed.
//	}
//	fmt.Println(e.SolutionCost(), e.Intervals())
//
// Labels refer to sorted positions. PointSet.LabelsInInputOrder maps them
// back to the order of the input file.
package dp
