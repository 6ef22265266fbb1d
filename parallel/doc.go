// Package parallel provides the two data-parallel primitives the interval
// dynamic program needs: a chunked parallel-for and a minimum-reduction.
//
// Work is split into contiguous index ranges, one goroutine per range
// (bounded by the worker count), the way pairwise-distance rows are split
// across workers. Returning from For is the synchronization barrier: every
// chunk has finished and its writes are visible to the caller.
//
// MinReduce keeps one best/argbest pair per chunk and merges them through a
// single mutex-protected update, so no result is lost and exact ties always
// resolve to the lowest index regardless of scheduling.
package parallel
