package risk

import (
	"context"
	"fmt"
	"time"

	"github.com/quantlab/risknorm/config"
	"github.com/quantlab/risknorm/montecarlo"
	"github.com/quantlab/risknorm/trades"
)

// Result carries both phases of a risk normalization: the solved position
// size and the growth estimate at that size, plus the sorted sample sets the
// scalars were read from.
type Result struct {
	// Largest fraction of capital per position that keeps the drawdown tail
	// within tolerance.
	SafeF float64

	// Compound annual rate of return at SafeF, in percent.
	CAR25 float64

	// Solver iterations spent reaching SafeF.
	Iterations int

	// Drawdown at the measured tail for the final iteration.
	TailRisk float64

	// Seed actually used, for replaying the run.
	Seed uint64

	// Sorted per-curve max drawdowns at SafeF and sorted terminal equities
	// at SafeF, for the reporting layer.
	DrawdownDistribution []float64
	EquityDistribution   []float64
}

// Normalize runs both phases against an immutable trade pool: solve for
// safe-f, then estimate CAR25 at that fraction. It is a pure function of
// (pool, cfg, seed); a zero cfg.Seed is replaced with a clock-derived one,
// reported back in the Result.
func Normalize(ctx context.Context, pool trades.TradeList, cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if len(pool) == 0 {
		return nil, ErrEmptyTradeList
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	est := &montecarlo.Estimator{Pool: pool, Cfg: cfg, Seed: seed}

	solver := &Solver{Estimator: est}
	safeF, trace, err := solver.Solve(ctx)
	if err != nil {
		return nil, err
	}

	car, equityDist, err := CAR25(ctx, est, safeF)
	if err != nil {
		return nil, err
	}

	return &Result{
		SafeF:                safeF,
		CAR25:                car,
		Iterations:           trace.Iterations,
		TailRisk:             trace.TailRisk,
		Seed:                 seed,
		DrawdownDistribution: trace.DrawdownDistribution,
		EquityDistribution:   equityDist,
	}, nil
}
