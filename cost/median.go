package cost

// MedianOracle evaluates the p-median criterion: exemplar cost is the sum of
// Euclidean (square-rooted) distances from every other member.
//
// Every interval is evaluated from scratch in O(len²); there is no incremental
// sweep for this criterion.
type MedianOracle struct {
	base
}

var _ Oracle = (*MedianOracle)(nil)

// Criterion returns Median.
func (o *MedianOracle) Criterion() Criterion { return Median }

// CostsEndingAt returns the costs of [i-j, i] for j in [0, maxLen).
func (o *MedianOracle) CostsEndingAt(i, maxLen int, dst []float64) []float64 {
	return o.bruteEndingAt(i, maxLen, dst)
}

// CostsFromStart returns the costs of [0, j] for j in [0, maxLen).
func (o *MedianOracle) CostsFromStart(maxLen int, dst []float64) []float64 {
	return o.bruteFromStart(maxLen, dst)
}
