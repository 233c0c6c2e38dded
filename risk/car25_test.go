package risk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantlab/risknorm/config"
	"github.com/quantlab/risknorm/trades"
)

func TestCAR25FlatPool(t *testing.T) {
	t.Parallel()

	// Zero returns everywhere: terminal wealth equals initial capital and the
	// annualized rate is exactly zero at any fraction.
	cfg := config.Default()
	cfg.NumberOfCurves = 100

	for _, fraction := range []float64{0, 0.5, 1, 3} {
		car, dist, err := CAR25(context.Background(), newEstimator(trades.TradeList{0.0}, cfg, 7), fraction)
		require.NoError(t, err)
		assert.Equal(t, 0.0, car, "fraction %v", fraction)
		require.Len(t, dist, cfg.NumberOfCurves)
		for _, eq := range dist {
			assert.Equal(t, cfg.InitialCapital, eq)
		}
	}
}

func TestCAR25NonPositiveTerminalWealth(t *testing.T) {
	t.Parallel()

	// Every curve is ruined on the first draw, so the 25th percentile of
	// terminal wealth is zero and the logarithm is undefined.
	cfg := config.Default()
	cfg.NumberOfCurves = 100

	_, dist, err := CAR25(context.Background(), newEstimator(trades.TradeList{-1.0}, cfg, 7), 1)
	assert.ErrorIs(t, err, ErrNonPositiveTerminalWealth)
	assert.Len(t, dist, cfg.NumberOfCurves, "distribution still exposed for inspection")
}

func TestCAR25PositiveDrift(t *testing.T) {
	t.Parallel()

	// A drifting pool at a modest fraction should annualize to a positive,
	// finite rate.
	pool := normalPool(1000, 0.001, 0.003, 4)
	cfg := config.Default()

	car, dist, err := CAR25(context.Background(), newEstimator(pool, cfg, 9), 1)
	require.NoError(t, err)
	assert.Greater(t, car, 0.0)
	assert.Less(t, car, 1000.0)
	assert.Len(t, dist, cfg.NumberOfCurves)
}
