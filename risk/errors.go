package risk

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTradeList means there is nothing to resample from.
	ErrEmptyTradeList = errors.New("risk: empty trade list")

	// ErrDegenerateRisk means no drawdown was observed at the measured tail,
	// so the proportional rescale is undefined. The fraction could be raised
	// without bound under the current sampling; the caller should supply a
	// more pessimistic trade pool or accept an upper-bound fraction.
	ErrDegenerateRisk = errors.New("risk: zero tail risk, fraction unbounded under current sampling")

	// ErrNotConverged means the solver hit its iteration cap before the tail
	// risk came within the desired accuracy of the tolerance.
	ErrNotConverged = errors.New("risk: solver did not converge")

	// ErrNonPositiveTerminalWealth means the 25th-percentile terminal wealth
	// is zero or negative, so the compound-return logarithm is undefined.
	// This legitimately happens when the fraction is large enough that ruin
	// is common within the lower quartile of outcomes.
	ErrNonPositiveTerminalWealth = errors.New("risk: non-positive terminal wealth at 25th percentile")
)

// NotConvergedError reports the state of the search when the iteration cap
// was exhausted, so the caller can judge how far off it ended.
type NotConvergedError struct {
	Iterations   int
	LastFraction float64
	LastTailRisk float64
}

func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("risk: solver did not converge after %d iterations (fraction %.4f, tail risk %.4f)",
		e.Iterations, e.LastFraction, e.LastTailRisk)
}

func (e *NotConvergedError) Unwrap() error { return ErrNotConverged }
