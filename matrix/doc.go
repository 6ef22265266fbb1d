// Package matrix provides the dense, row-major float64 store used for dynamic
// programming cost tables.
//
// The matrix package provides:
//
//   - Dense: a flat r×c buffer with bounds-checked At/Set that return
//     sentinel errors (ErrOutOfRange) instead of panicking.
//   - +Inf as a first-class "not computed / unreachable" value; NaN and -Inf
//     are rejected on write (ErrNaN).
//   - Row views for allocation-free reads in hot loops.
//
// Distinct cells may be written concurrently; the DP engine relies on this to
// fill the columns of one row from several goroutines.
package matrix
