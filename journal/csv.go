package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

// NewCSV opens (or creates) an append-only run journal. The header is only
// written when the file is new, so repeated runs accumulate.
func NewCSV(path string) (*CSVJournal, error) {
	info, statErr := os.Stat(path)
	fresh := statErr != nil || info.Size() == 0

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write([]string{
			"run_id", "created", "trades_file", "forecast_length",
			"initial_capital", "tail_percentile", "drawdown_tolerance",
			"number_of_curves", "seed", "safe_f", "car25", "tail_risk",
			"iterations", "converged",
		}); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, err
		}
	}

	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	j.w.Write([]string{
		r.RunID,
		r.Created.Format(time.RFC3339),
		r.TradesFile,
		strconv.Itoa(r.ForecastLength),
		f(r.InitialCapital),
		f(r.TailPercentile),
		f(r.DrawdownTolerance),
		strconv.Itoa(r.NumberOfCurves),
		strconv.FormatUint(r.Seed, 10),
		f(r.SafeF),
		f(r.CAR25),
		f(r.TailRisk),
		strconv.Itoa(r.Iterations),
		strconv.FormatBool(r.Converged),
	})
	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
