package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, trades_file, forecast_length, initial_capital,
		 tail_percentile, drawdown_tolerance, number_of_curves, seed,
		 safe_f, car25, tail_risk, iterations, converged)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.TradesFile, r.ForecastLength, r.InitialCapital,
		r.TailPercentile, r.DrawdownTolerance, r.NumberOfCurves, int64(r.Seed),
		r.SafeF, r.CAR25, r.TailRisk, r.Iterations, r.Converged,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
