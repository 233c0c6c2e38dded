package montecarlo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantlab/risknorm/trades"
)

func normalPool(n int, mean, stddev float64, seed int64) trades.TradeList {
	return trades.Generate(n, mean, stddev, rand.New(rand.NewSource(seed)))
}

func TestSimulateZeroFraction(t *testing.T) {
	t.Parallel()

	pool := normalPool(1000, 0.001, 0.003, 1)
	for seed := int64(0); seed < 10; seed++ {
		res := Simulate(pool, 0, 500, 100000, rand.New(rand.NewSource(seed)))
		assert.Equal(t, 100000.0, res.FinalEquity, "no risk taken, equity must not move")
		assert.Equal(t, 0.0, res.MaxDrawdown)
	}
}

func TestSimulateDrawdownBounds(t *testing.T) {
	t.Parallel()

	pool := normalPool(1000, 0.0, 0.01, 2)
	for _, fraction := range []float64{0.1, 0.5, 1, 2, 5} {
		res := Simulate(pool, fraction, 500, 100000, rand.New(rand.NewSource(3)))
		assert.GreaterOrEqual(t, res.MaxDrawdown, 0.0, "fraction %v", fraction)
		assert.LessOrEqual(t, res.MaxDrawdown, 1.0, "fraction %v", fraction)
	}
}

func TestSimulateFlatPool(t *testing.T) {
	t.Parallel()

	pool := trades.TradeList{0, 0, 0}
	res := Simulate(pool, 1, 500, 100000, rand.New(rand.NewSource(4)))
	assert.Equal(t, 100000.0, res.FinalEquity)
	assert.Equal(t, 0.0, res.MaxDrawdown)
}

func TestSimulateRuin(t *testing.T) {
	t.Parallel()

	// A -100% return at full fraction wipes the account on the first draw
	// and equity stays at zero for the rest of the sequence.
	pool := trades.TradeList{-1.0}
	res := Simulate(pool, 1, 10, 100000, rand.New(rand.NewSource(5)))
	assert.Equal(t, 0.0, res.FinalEquity)
	assert.Equal(t, 1.0, res.MaxDrawdown, "ruin pins drawdown at 1")
}

func TestSimulateDeterministic(t *testing.T) {
	t.Parallel()

	pool := normalPool(500, 0.001, 0.02, 6)
	a := Simulate(pool, 0.5, 500, 100000, rand.New(rand.NewSource(7)))
	b := Simulate(pool, 0.5, 500, 100000, rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}

func TestSimulatePath(t *testing.T) {
	t.Parallel()

	pool := normalPool(500, 0.001, 0.02, 8)
	res, path := SimulatePath(pool, 0.5, 500, 100000, rand.New(rand.NewSource(9)))
	require.Len(t, path, 500)
	assert.Equal(t, res.FinalEquity, path[len(path)-1])

	// Path must reproduce Simulate given the same draws.
	direct := Simulate(pool, 0.5, 500, 100000, rand.New(rand.NewSource(9)))
	assert.Equal(t, direct, res)
}
