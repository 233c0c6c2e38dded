package stats

import "math"

// Percentile returns the p-th percentile (p in [0,100]) of a sorted sample
// using linear interpolation between order statistics. p values outside the
// range are clamped to the minimum and maximum.
//
// The interpolation must stay identical everywhere a percentile is taken:
// the fraction solver and the CAR calculator read the same distributions and
// a mismatch would make convergence irreproducible for a fixed seed.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 || p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}

	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	if lo+1 >= n {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
