package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantlab/risknorm/config"
	"github.com/quantlab/risknorm/journal"
	"github.com/quantlab/risknorm/montecarlo"
	"github.com/quantlab/risknorm/pkg/id"
	"github.com/quantlab/risknorm/report"
	"github.com/quantlab/risknorm/risk"
	"github.com/quantlab/risknorm/trades"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve safe-f and CAR25 for a trade list",
	Long: `Run loads a trade list (one return fraction per line, .xz accepted),
solves for the largest position-size fraction whose simulated drawdown tail
stays within the drawdown tolerance, and reports the compound annual rate of
return at the 25th percentile of terminal wealth.

Example:
  risknorm run -t trades.csv --tolerance 0.10 --seed 42 --db runs.sqlite`,
	RunE: runRun,
}

var (
	runTradesPath string
	runConfigPath string
	runDBPath     string
	runCSVPath    string
	runPlotDir    string

	runTolerance float64
	runAccuracy  float64
	runTailPct   float64
	runLength    int
	runCapital   float64
	runCurves    int
	runWorkers   int
	runSeed      uint64
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runTradesPath, "trades", "t", "", "path to trade list CSV (required)")
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to YAML/JSON config file")
	runCmd.Flags().StringVarP(&runDBPath, "db", "d", "", "journal runs to this SQLite DB")
	runCmd.Flags().StringVar(&runCSVPath, "journal-csv", "", "journal runs to this CSV file")
	runCmd.Flags().StringVar(&runPlotDir, "plots", "", "write distribution PNGs to this directory")

	runCmd.Flags().Float64Var(&runTolerance, "tolerance", 0.10, "max acceptable drawdown as a fraction of peak equity")
	runCmd.Flags().Float64Var(&runAccuracy, "accuracy", 0.003, "convergence epsilon on tail risk")
	runCmd.Flags().Float64Var(&runTailPct, "tail", 5, "tail percentage for drawdown risk (5 = 95th percentile)")
	runCmd.Flags().IntVar(&runLength, "length", 500, "periods per synthetic equity curve")
	runCmd.Flags().Float64Var(&runCapital, "capital", 100000, "initial account capital")
	runCmd.Flags().IntVar(&runCurves, "curves", 1000, "equity curves per distribution estimate")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "concurrent simulations (0 = NumCPU)")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "master random seed (0 = clock)")

	runCmd.MarkFlagRequired("trades")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	pool, err := trades.LoadCSV(runTradesPath)
	if err != nil {
		return fmt.Errorf("load trades: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := risk.Normalize(ctx, pool, cfg)
	if err != nil {
		// A degenerate or non-converging pool is still worth journaling by
		// hand; here we just surface the typed failure.
		if errors.Is(err, risk.ErrDegenerateRisk) || errors.Is(err, risk.ErrNotConverged) {
			return fmt.Errorf("solver: %w", err)
		}
		return err
	}

	report.PrintResult(cmd.OutOrStdout(), res, cfg)

	if err := journalRun(cfg, res); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	if err := writePlots(cfg, pool, res); err != nil {
		return fmt.Errorf("plots: %w", err)
	}
	return nil
}

// buildConfig layers flag overrides on top of the config file (or defaults).
// Only flags the user actually set override the file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.LoadFromFile(runConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	set := cmd.Flags().Changed
	if set("tolerance") {
		cfg.DrawdownTolerance = runTolerance
	}
	if set("accuracy") {
		cfg.DesiredAccuracy = runAccuracy
	}
	if set("tail") {
		cfg.TailPercentile = runTailPct
	}
	if set("length") {
		cfg.ForecastLength = runLength
	}
	if set("capital") {
		cfg.InitialCapital = runCapital
	}
	if set("curves") {
		cfg.NumberOfCurves = runCurves
	}
	if set("workers") {
		cfg.Workers = runWorkers
	}
	if set("seed") {
		cfg.Seed = runSeed
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func journalRun(cfg *config.Config, res *risk.Result) error {
	if runDBPath == "" && runCSVPath == "" {
		return nil
	}

	rec := journal.RunRecord{
		RunID:             id.New(),
		Created:           time.Now().UTC(),
		TradesFile:        runTradesPath,
		ForecastLength:    cfg.ForecastLength,
		InitialCapital:    cfg.InitialCapital,
		TailPercentile:    cfg.TailPercentile,
		DrawdownTolerance: cfg.DrawdownTolerance,
		NumberOfCurves:    cfg.NumberOfCurves,
		Seed:              res.Seed,
		SafeF:             res.SafeF,
		CAR25:             res.CAR25,
		TailRisk:          res.TailRisk,
		Iterations:        res.Iterations,
		Converged:         true,
	}

	if runDBPath != "" {
		j, err := journal.NewSQLite(runDBPath)
		if err != nil {
			return err
		}
		defer j.Close()
		if err := j.RecordRun(rec); err != nil {
			return err
		}
		fmt.Printf("Journaled run %s to %s\n", rec.RunID, runDBPath)
	}
	if runCSVPath != "" {
		j, err := journal.NewCSV(runCSVPath)
		if err != nil {
			return err
		}
		defer j.Close()
		if err := j.RecordRun(rec); err != nil {
			return err
		}
	}
	return nil
}

func writePlots(cfg *config.Config, pool trades.TradeList, res *risk.Result) error {
	if runPlotDir == "" {
		return nil
	}
	if err := os.MkdirAll(runPlotDir, 0755); err != nil {
		return err
	}

	if err := report.PlotDistribution(res.DrawdownDistribution,
		"Max Drawdown Distribution at safe-f", "Max Drawdown",
		filepath.Join(runPlotDir, "drawdown_distribution.png")); err != nil {
		return err
	}
	if err := report.PlotDistribution(res.EquityDistribution,
		"Terminal Equity Distribution at safe-f", "Terminal Equity",
		filepath.Join(runPlotDir, "equity_distribution.png")); err != nil {
		return err
	}

	est := &montecarlo.Estimator{Pool: pool, Cfg: cfg, Seed: res.Seed}
	return report.PlotEquityCurve(est.SamplePath(res.SafeF),
		"Sample Bootstrap Equity Curve at safe-f",
		filepath.Join(runPlotDir, "sample_curve.png"))
}
