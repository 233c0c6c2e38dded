package risk

import (
	"context"
	"fmt"
	"math"

	"github.com/quantlab/risknorm/montecarlo"
	"github.com/quantlab/risknorm/stats"
)

// CAR25 estimates the compound annual rate of return, in percent, from the
// 25th percentile of terminal wealth at the given fraction. Reading the
// lower quartile rather than the median makes it a likely-worse-than-median
// growth figure to go with the drawdown-limited position size.
//
// The sorted terminal-equity distribution is returned alongside the rate so
// a reporting layer can visualize it.
func CAR25(ctx context.Context, est *montecarlo.Estimator, fraction float64) (float64, []float64, error) {
	dist, err := est.EquityDistribution(ctx, fraction)
	if err != nil {
		return 0, nil, err
	}

	cfg := est.Cfg
	tw25 := stats.Percentile(dist, 25)
	if tw25 <= 0 {
		return 0, dist, fmt.Errorf("terminal wealth %.2f: %w", tw25, ErrNonPositiveTerminalWealth)
	}

	// Continuous-compounding annualization of the multi-period return.
	perYear := float64(cfg.PeriodsPerYear) / float64(cfg.ForecastLength)
	car := 100 * (math.Exp(perYear*math.Log(tw25/cfg.InitialCapital)) - 1)
	return car, dist, nil
}
