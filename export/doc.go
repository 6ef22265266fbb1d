// Package export writes solver results to disk.
//
// Formats:
//   - assignments CSV: point_id,x,y,cluster_id, coordinates with six
//     decimals, y left empty for one-dimensional data;
//   - Pareto front CSV: k,cost with +Inf written as "inf";
//   - solution report: JSON or YAML summary with cost, status, intervals
//     and the front, for console output.
//
// Nothing is written for an unsolved engine: Save* return ErrNoSolution.
package export
