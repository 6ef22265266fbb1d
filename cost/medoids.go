package cost

import "math"

// MedoidsOracle evaluates the k-medoids criterion: exemplar cost is the sum
// of squared distances from every other member.
type MedoidsOracle struct {
	base
	incremental bool
}

var _ Oracle = (*MedoidsOracle)(nil)

// Criterion returns Medoids.
func (o *MedoidsOracle) Criterion() Criterion { return Medoids }

// CostsEndingAt returns the costs of [i-j, i] for j in [0, maxLen).
func (o *MedoidsOracle) CostsEndingAt(i, maxLen int, dst []float64) []float64 {
	if !o.incremental {
		return o.bruteEndingAt(i, maxLen, dst)
	}

	return o.sweep(i, -1, maxLen, dst)
}

// CostsFromStart returns the costs of [0, j] for j in [0, maxLen).
func (o *MedoidsOracle) CostsFromStart(maxLen int, dst []float64) []float64 {
	if !o.incremental {
		return o.bruteFromStart(maxLen, dst)
	}

	return o.sweep(0, 1, maxLen, dst)
}

// sweep grows a window from anchor one point at a time in direction step
// (-1 leftwards, +1 rightwards) and records the best exemplar cost after
// each growth.
//
// acc[m] holds, for the m-th admitted point as candidate, the summed squared
// distance to every point currently in the window. Admitting point p:
//
//	acc[m] += d(p, m)          for every existing candidate m
//	acc[new] = Σ_m d(p, m)     one O(len) sum for p as candidate
//
// Squared-distance sums are additive and independent of where a point sits in
// the window, so acc after admitting L points equals the brute-force sums of
// the length-L window.
//
// Complexity: O(maxLen²·D) for all lengths together.
func (o *MedoidsOracle) sweep(anchor, step, maxLen int, dst []float64) []float64 {
	dst = resize(dst, maxLen)
	n := o.ps.N()
	acc := make([]float64, 0, maxLen)

	for l := 0; l < maxLen; l++ {
		p := anchor + step*l
		if p < 0 || p >= n {
			for j := l; j < maxLen; j++ {
				dst[j] = math.Inf(1)
			}

			break
		}

		var fresh float64
		best := math.Inf(1)
		for m := range acc {
			d := o.dist(p, anchor+step*m)
			acc[m] += d
			fresh += d
			if acc[m] < best {
				best = acc[m]
			}
		}
		acc = append(acc, fresh)
		if fresh < best {
			best = fresh
		}
		dst[l] = best
	}

	return dst
}
