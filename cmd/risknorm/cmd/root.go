package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "risknorm",
	Short: "Position-size risk normalization via Monte Carlo resampling",
	Long: `Risknorm estimates, from a list of per-period trade returns, the largest
fraction of trading capital that can be risked per position without exceeding
a personal drawdown tolerance (safe-f), and the conservative annualized
growth rate obtainable at that size (CAR25).

It provides tools for:
  - Solving safe-f and CAR25 from a trade list CSV
  - Generating synthetic trade lists for experimentation
  - Journaling runs to CSV or SQLite for comparison
  - Plotting drawdown and terminal-wealth distributions`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
