package parallel

import (
	"math"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// MinChunk is the smallest range handed to a single goroutine. Ranges shorter
// than 2*MinChunk run on the calling goroutine.
const MinChunk = 16

// Workers normalizes a requested worker count: values <= 0 mean
// runtime.NumCPU().
func Workers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}

	return n
}

// chunks splits [lo, hi) into at most workers contiguous ranges of at least
// MinChunk indices each.
func chunks(lo, hi, workers int) [][2]int {
	total := hi - lo
	if total <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if maxW := total / MinChunk; workers > maxW {
		workers = max(maxW, 1)
	}

	per := (total + workers - 1) / workers
	out := make([][2]int, 0, workers)
	for start := lo; start < hi; start += per {
		out = append(out, [2]int{start, min(start+per, hi)})
	}

	return out
}

// For runs body over [lo, hi) split into contiguous chunks executed by up to
// workers goroutines. body receives a half-open sub-range and may allocate
// chunk-local scratch space. The first non-nil error is returned after every
// started chunk has finished.
func For(lo, hi, workers int, body func(lo, hi int) error) error {
	parts := chunks(lo, hi, workers)
	if len(parts) == 0 {
		return nil
	}
	if len(parts) == 1 {
		return body(parts[0][0], parts[0][1])
	}

	var g errgroup.Group
	g.SetLimit(len(parts))
	for _, p := range parts {
		g.Go(func() error {
			return body(p[0], p[1])
		})
	}

	return g.Wait()
}

// MinReduce evaluates eval(i) for every i in [lo, hi) and returns the smallest
// value with its index. Exact ties resolve to the lowest index. Values that
// are NaN or +Inf never win; when nothing is finite the result is (+Inf, -1).
func MinReduce(lo, hi, workers int, eval func(i int) float64) (best float64, idx int) {
	best, idx = math.Inf(1), -1
	var mu sync.Mutex

	_ = For(lo, hi, workers, func(clo, chi int) error {
		lb, li := ArgMin(clo, chi, eval)
		if li < 0 {
			return nil
		}
		mu.Lock()
		if lb < best || (lb == best && li < idx) {
			best, idx = lb, li
		}
		mu.Unlock()

		return nil
	})

	return best, idx
}

// ArgMin is the sequential kernel of MinReduce: strict '<' keeps the first
// (lowest) index on ties.
func ArgMin(lo, hi int, eval func(i int) float64) (best float64, idx int) {
	best, idx = math.Inf(1), -1
	for i := lo; i < hi; i++ {
		if v := eval(i); v < best {
			best, idx = v, i
		}
	}

	return best, idx
}
