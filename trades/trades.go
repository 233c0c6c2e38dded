package trades

import (
	"fmt"
	"math/rand"
)

// TradeList is an ordered pool of per-period return fractions, one per
// trading period (0.01 means +1%, -0.02 means -2%, 0 means flat). The pool is
// the best available estimate of future performance: it is supplied once and
// never mutated, and every candidate position size is evaluated against the
// same pool with only the random draws differing.
type TradeList []float64

// Validate reports whether the pool can be simulated at all.
func (t TradeList) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("trade list is empty")
	}
	return nil
}

// Generate draws n pseudo trades from a normal distribution. Useful for
// smoke-testing a risk tolerance before a real trade list exists.
func Generate(n int, mean, stddev float64, rng *rand.Rand) TradeList {
	out := make(TradeList, n)
	for i := range out {
		out[i] = mean + stddev*rng.NormFloat64()
	}
	return out
}
