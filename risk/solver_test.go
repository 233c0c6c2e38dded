package risk

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantlab/risknorm/config"
	"github.com/quantlab/risknorm/montecarlo"
	"github.com/quantlab/risknorm/trades"
)

func normalPool(n int, mean, stddev float64, seed int64) trades.TradeList {
	return trades.Generate(n, mean, stddev, rand.New(rand.NewSource(seed)))
}

func newEstimator(pool trades.TradeList, cfg *config.Config, seed uint64) *montecarlo.Estimator {
	return &montecarlo.Estimator{Pool: pool, Cfg: cfg, Seed: seed}
}

func TestSolveConverges(t *testing.T) {
	t.Parallel()

	// Volatile pool: the drawdown tail at full fraction is well above a 10%
	// tolerance, so the solution sits strictly inside (0, 1).
	pool := normalPool(1000, 0.001, 0.02, 1)
	cfg := config.Default()

	solver := &Solver{Estimator: newEstimator(pool, cfg, 7)}
	safeF, trace, err := solver.Solve(context.Background())
	require.NoError(t, err)

	assert.True(t, trace.Converged)
	assert.Greater(t, safeF, 0.0)
	assert.Less(t, safeF, 1.0)
	assert.InDelta(t, cfg.DrawdownTolerance, trace.TailRisk, cfg.DesiredAccuracy)
	assert.Len(t, trace.DrawdownDistribution, cfg.NumberOfCurves)
}

func TestSolveDegenerateRisk(t *testing.T) {
	t.Parallel()

	// A flat pool never draws down, so tail risk stays zero at any fraction
	// and the proportional rescale is undefined.
	cfg := config.Default()
	cfg.NumberOfCurves = 100

	solver := &Solver{Estimator: newEstimator(trades.TradeList{0.0}, cfg, 7)}
	_, trace, err := solver.Solve(context.Background())
	assert.ErrorIs(t, err, ErrDegenerateRisk)
	assert.Equal(t, 1, trace.Iterations)
	assert.Equal(t, 0.0, trace.TailRisk)
}

func TestSolveNotConverged(t *testing.T) {
	t.Parallel()

	// An accuracy no Monte Carlo estimate can hit forces the cap.
	pool := normalPool(1000, 0.001, 0.02, 2)
	cfg := config.Default()
	cfg.NumberOfCurves = 200
	cfg.MaxIterations = 3
	cfg.DesiredAccuracy = 1e-12

	solver := &Solver{Estimator: newEstimator(pool, cfg, 7)}
	_, _, err := solver.Solve(context.Background())
	require.ErrorIs(t, err, ErrNotConverged)

	var nc *NotConvergedError
	require.ErrorAs(t, err, &nc)
	assert.Equal(t, 3, nc.Iterations)
	assert.Greater(t, nc.LastFraction, 0.0)
	assert.Greater(t, nc.LastTailRisk, 0.0)
}

func TestSolveCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	solver := &Solver{Estimator: newEstimator(normalPool(100, 0.001, 0.02, 3), config.Default(), 7)}
	_, _, err := solver.Solve(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProportionalStep(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 2.0, Proportional{}.Step(1.0, 0.05, 0.10), 1e-12)
	assert.InDelta(t, 0.5, Proportional{}.Step(1.0, 0.20, 0.10), 1e-12)
}

func TestBisectionStepBrackets(t *testing.T) {
	t.Parallel()

	b := &Bisection{High: 2}

	// Too risky at 1.0: the next candidate halves downward.
	next := b.Step(1.0, 0.30, 0.10)
	assert.InDelta(t, 0.5, next, 1e-12)

	// Too safe at 0.5: the bracket tightens upward.
	next = b.Step(next, 0.04, 0.10)
	assert.InDelta(t, 0.75, next, 1e-12)

	// The interval keeps shrinking monotonically.
	widthBefore := math.Abs(1.0 - 0.5)
	next2 := b.Step(next, 0.12, 0.10)
	assert.Less(t, math.Abs(next2-next), widthBefore)
}
