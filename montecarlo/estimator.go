package montecarlo

import (
	"context"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"github.com/quantlab/risknorm/config"
	"github.com/quantlab/risknorm/stats"
	"github.com/quantlab/risknorm/trades"
)

// Estimator runs batches of independent curve simulations and exposes the
// resulting empirical distributions. Curves within a batch are fanned out
// over a worker pool; each curve draws from its own generator seeded by
// mixing the master Seed with the curve index, so a fixed seed reproduces
// the batch byte for byte at any worker count.
type Estimator struct {
	Pool trades.TradeList
	Cfg  *config.Config

	// Master seed for the whole run.
	Seed uint64
}

// DrawdownDistribution returns the sorted maximum drawdowns of one batch of
// curves at the given fraction.
func (e *Estimator) DrawdownDistribution(ctx context.Context, fraction float64) ([]float64, error) {
	return e.distribution(ctx, fraction, func(r CurveResult) float64 { return r.MaxDrawdown })
}

// DrawdownTail returns the drawdown at the high tail of the max-drawdown
// distribution, the percentile at 100 - TailPercentile. This is the worst
// outcome the trader compares against their drawdown tolerance.
func (e *Estimator) DrawdownTail(ctx context.Context, fraction float64) (float64, error) {
	dist, err := e.DrawdownDistribution(ctx, fraction)
	if err != nil {
		return 0, err
	}
	return stats.Percentile(dist, 100-e.Cfg.TailPercentile), nil
}

// EquityDistribution returns the sorted terminal equities of one batch of
// curves at the given fraction.
func (e *Estimator) EquityDistribution(ctx context.Context, fraction float64) ([]float64, error) {
	return e.distribution(ctx, fraction, func(r CurveResult) float64 { return r.FinalEquity })
}

// SamplePath simulates a single curve at the given fraction and returns its
// period-by-period equity, for reporting.
func (e *Estimator) SamplePath(fraction float64) []float64 {
	rng := rand.New(rand.NewSource(curveSeed(e.Seed, 0)))
	_, path := SimulatePath(e.Pool, fraction, e.Cfg.ForecastLength, e.Cfg.InitialCapital, rng)
	return path
}

func (e *Estimator) distribution(ctx context.Context, fraction float64, stat func(CurveResult) float64) ([]float64, error) {
	n := e.Cfg.NumberOfCurves
	workers := e.Cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	out := make([]float64, n)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rng := rand.New(rand.NewSource(curveSeed(e.Seed, uint64(i))))
				out[i] = stat(Simulate(e.Pool, fraction, e.Cfg.ForecastLength, e.Cfg.InitialCapital, rng))
			}
		}()
	}

	// Cancellation granularity is the whole batch: stop dispatching curves
	// and report ctx.Err once the workers drain.
	var err error
dispatch:
	for i := 0; i < n; i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	sort.Float64s(out)
	return out, nil
}

// curveSeed mixes the master seed with a curve index (SplitMix64 finalizer)
// so neighboring curves get uncorrelated streams.
func curveSeed(seed, curve uint64) int64 {
	z := seed + (curve+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
