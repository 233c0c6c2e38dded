package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantlab/risknorm/journal"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List journaled runs",
	Long: `Runs lists risk-normalization runs recorded in a SQLite journal,
newest first.

Example:
  risknorm runs -d runs.sqlite -n 10`,
	RunE: runRuns,
}

var (
	runsDBPath string
	runsLimit  int
)

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().StringVarP(&runsDBPath, "db", "d", "./runs.sqlite", "path to SQLite journal DB")
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "maximum runs to list (0 = all)")
}

func runRuns(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(runsDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListRuns(runsLimit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-28s %-20s %-8s %-9s %-8s %s\n",
		"RUN ID", "CREATED", "SAFE-F", "CAR25", "TOL", "TRADES")
	for _, r := range recs {
		fmt.Fprintf(w, "%-28s %-20s %-8.4f %-9.3f %-8.3f %s\n",
			r.RunID,
			r.Created.Format(time.RFC3339),
			r.SafeF,
			r.CAR25,
			r.DrawdownTolerance,
			r.TradesFile,
		)
	}
	return nil
}
