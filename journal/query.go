package journal

import (
	"database/sql"
	"fmt"
)

// GetRun returns a single journaled run by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	row := j.db.QueryRow(`
		SELECT run_id, created, trades_file, forecast_length, initial_capital,
		       tail_percentile, drawdown_tolerance, number_of_curves, seed,
		       safe_f, car25, tail_risk, iterations, converged
		FROM runs
		WHERE run_id = ?`, runID)

	rec, err := scanRun(row)
	if err == sql.ErrNoRows {
		return RunRecord{}, fmt.Errorf("run %q not found", runID)
	}
	return rec, err
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means all.
func (j *SQLite) ListRuns(limit int) ([]RunRecord, error) {
	q := `
		SELECT run_id, created, trades_file, forecast_length, initial_capital,
		       tail_percentile, drawdown_tolerance, number_of_curves, seed,
		       safe_f, car25, tail_risk, iterations, converged
		FROM runs
		ORDER BY run_id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (RunRecord, error) {
	var rec RunRecord
	var seed int64
	err := s.Scan(
		&rec.RunID,
		&rec.Created,
		&rec.TradesFile,
		&rec.ForecastLength,
		&rec.InitialCapital,
		&rec.TailPercentile,
		&rec.DrawdownTolerance,
		&rec.NumberOfCurves,
		&seed,
		&rec.SafeF,
		&rec.CAR25,
		&rec.TailRisk,
		&rec.Iterations,
		&rec.Converged,
	)
	rec.Seed = uint64(seed)
	return rec, err
}
