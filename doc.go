// Package paretodp computes exact, optimal clusterings of point sets into K
// contiguous intervals, for two exemplar criteria, by dynamic programming.
//
// 🚀 What is paretodp?
//
//	Points are ordered on their first coordinate and cut into K runs. Each run
//	is charged the cost of its best member used as exemplar:
//		• medoids: sum of squared Euclidean distances to the exemplar
//		• median:  sum of plain Euclidean distances to the exemplar
//	One solve yields the optimal cost for every cluster count 1..K, which is
//	the cost/cluster-count Pareto front of the instance.
//
// ✨ Highlights
//
//   - Exact: O(K·N²·D) for medoids (incremental sweep), O(K·N³·D) for median
//   - Parallel: the columns of each DP row are filled by a worker pool
//   - Deterministic: lowest split wins ties, whatever the worker count
//   - Safe: infeasible requests (K > N) return an error plus a partial result
//
// Packages:
//
//	pointset/  — point storage, file import (.gz/.zst aware), ordering
//	cost/      — interval cost oracles for both criteria
//	matrix/    — dense row-major cost table
//	parallel/  — chunked parallel-for and min-reduction
//	dp/        — the engine: fill, backtrack, label, Pareto front
//	verify/    — independent brute-force cost recomputation
//	export/    — assignment/front CSV and JSON/YAML reports
//	crosseval/ — cross-criterion benchmark over instance directories
//	logging/, metrics/, config/ — slog, Prometheus and viper plumbing
//	cmd/paretodp — the command line
//
// Quick example:
//
//	ps, _ := pointset.New(4, 1, []float64{0, 1, 2, 10})
//	e := dp.New(cost.Medoids, dp.DefaultOptions())
//	e.SetPoints(ps)
//	e.SetClusterCount(2)
//	_ = e.Solve()        // intervals [0,2] [3,3], cost 2
//
//	go install github.com/katalvlaran/paretodp/cmd/paretodp@latest
package paretodp
