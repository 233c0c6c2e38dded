// Package montecarlo builds synthetic equity curves by bootstrap-resampling
// a trade pool, and estimates empirical distributions of per-curve summary
// statistics across many independent curves.
package montecarlo

import (
	"math/rand"

	"github.com/quantlab/risknorm/trades"
)

// CurveResult summarizes one simulated equity sequence.
type CurveResult struct {
	// Account value after the final period.
	FinalEquity float64

	// Largest peak-to-trough retracement observed within the sequence, as a
	// proportion of the highest equity marked to market. Always in [0, 1].
	MaxDrawdown float64
}

// Simulate forms one equity sequence of forecastLength periods by drawing
// trades from the pool with replacement. Each period the position risks
// fraction of current equity on the drawn return. The pool is never mutated;
// all randomness comes from rng.
//
// If a loss at the given fraction drives equity to zero or below, the account
// is ruined: drawdown is pinned at 1 from that point on rather than letting
// the peak ratio produce values outside [0, 1].
func Simulate(pool trades.TradeList, fraction float64, forecastLength int, initialCapital float64, rng *rand.Rand) CurveResult {
	equity := initialCapital
	maxEquity := equity
	maxDrawdown := 0.0

	for i := 0; i < forecastLength; i++ {
		r := pool[rng.Intn(len(pool))]
		equity += equity * fraction * r

		if equity > maxEquity {
			maxEquity = equity
		}

		var drawdown float64
		switch {
		case equity <= 0:
			drawdown = 1
		case maxEquity > 0:
			drawdown = (maxEquity - equity) / maxEquity
		}
		if drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	return CurveResult{FinalEquity: equity, MaxDrawdown: maxDrawdown}
}

// SimulatePath is Simulate but additionally records the equity marked to
// market after every period, for plotting a sample curve.
func SimulatePath(pool trades.TradeList, fraction float64, forecastLength int, initialCapital float64, rng *rand.Rand) (CurveResult, []float64) {
	equity := initialCapital
	maxEquity := equity
	maxDrawdown := 0.0
	path := make([]float64, forecastLength)

	for i := 0; i < forecastLength; i++ {
		r := pool[rng.Intn(len(pool))]
		equity += equity * fraction * r
		path[i] = equity

		if equity > maxEquity {
			maxEquity = equity
		}

		var drawdown float64
		switch {
		case equity <= 0:
			drawdown = 1
		case maxEquity > 0:
			drawdown = (maxEquity - equity) / maxEquity
		}
		if drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	return CurveResult{FinalEquity: equity, MaxDrawdown: maxDrawdown}, path
}
