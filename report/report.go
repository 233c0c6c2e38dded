// Package report renders risk-normalization results for humans: an aligned
// console summary and optional PNG plots of the simulated distributions.
package report

import (
	"fmt"
	"io"

	"github.com/quantlab/risknorm/config"
	"github.com/quantlab/risknorm/risk"
)

func PrintResult(w io.Writer, res *risk.Result, cfg *config.Config) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Risk Normalization Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inputs")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Forecast Length:    %d periods\n", cfg.ForecastLength)
	fmt.Fprintf(w, "Initial Capital:    %.2f\n", cfg.InitialCapital)
	fmt.Fprintf(w, "Drawdown Tolerance: %.2f%%\n", cfg.DrawdownTolerance*100)
	fmt.Fprintf(w, "Tail Percentile:    %.1f\n", cfg.TailPercentile)
	fmt.Fprintf(w, "Curves per Batch:   %d\n", cfg.NumberOfCurves)
	fmt.Fprintf(w, "Seed:               %d\n", res.Seed)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Outcome")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "safe-f:             %.4f\n", res.SafeF)
	fmt.Fprintf(w, "CAR25:              %.3f%%\n", res.CAR25)
	fmt.Fprintf(w, "Tail Risk:          %.4f\n", res.TailRisk)
	fmt.Fprintf(w, "Solver Iterations:  %d\n", res.Iterations)
	fmt.Fprintln(w)
}
