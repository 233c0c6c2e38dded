// Package risk solves for the largest position-size fraction whose simulated
// drawdown tail stays within the trader's tolerance (safe-f), and converts
// the terminal-wealth distribution at that fraction into a conservative
// annualized growth estimate (CAR25).
package risk

import (
	"context"
	"fmt"
	"math"

	"github.com/quantlab/risknorm/montecarlo"
	"github.com/quantlab/risknorm/stats"
)

// Solver searches for safe-f by repeatedly estimating the drawdown tail at a
// candidate fraction and stepping until the tail matches the tolerance.
type Solver struct {
	Estimator *montecarlo.Estimator

	// Policy picks the next candidate fraction. Nil means Proportional.
	Policy StepPolicy
}

// Trace records the state of the search at its last completed iteration.
type Trace struct {
	Iterations int
	Fraction   float64
	TailRisk   float64
	Converged  bool

	// Sorted max-drawdown distribution from the final iteration.
	DrawdownDistribution []float64
}

// Solve iterates from a full-capital fraction of 1.0 until the drawdown tail
// is within DesiredAccuracy of DrawdownTolerance, the iteration cap is hit,
// or the tail risk degenerates to zero. The candidate fraction is clamped to
// (0, MaxFraction].
func (s *Solver) Solve(ctx context.Context) (float64, Trace, error) {
	cfg := s.Estimator.Cfg
	policy := s.Policy
	if policy == nil {
		policy = Proportional{}
	}

	fraction := 1.0
	var trace Trace

	for i := 0; i < cfg.MaxIterations; i++ {
		dist, err := s.Estimator.DrawdownDistribution(ctx, fraction)
		if err != nil {
			return 0, trace, err
		}
		tailRisk := stats.Percentile(dist, 100-cfg.TailPercentile)

		trace = Trace{
			Iterations:           i + 1,
			Fraction:             fraction,
			TailRisk:             tailRisk,
			DrawdownDistribution: dist,
		}

		if math.Abs(tailRisk-cfg.DrawdownTolerance) < cfg.DesiredAccuracy {
			trace.Converged = true
			return fraction, trace, nil
		}
		if tailRisk == 0 {
			return 0, trace, fmt.Errorf("fraction %.4f: %w", fraction, ErrDegenerateRisk)
		}

		fraction = policy.Step(fraction, tailRisk, cfg.DrawdownTolerance)
		if fraction > cfg.MaxFraction {
			fraction = cfg.MaxFraction
		}
		if fraction <= 0 || math.IsNaN(fraction) {
			return 0, trace, &NotConvergedError{
				Iterations:   trace.Iterations,
				LastFraction: trace.Fraction,
				LastTailRisk: trace.TailRisk,
			}
		}
	}

	return 0, trace, &NotConvergedError{
		Iterations:   trace.Iterations,
		LastFraction: trace.Fraction,
		LastTailRisk: trace.TailRisk,
	}
}
