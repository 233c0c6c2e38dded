package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	trades_file TEXT NOT NULL,
	forecast_length INTEGER NOT NULL,
	initial_capital REAL NOT NULL,
	tail_percentile REAL NOT NULL,
	drawdown_tolerance REAL NOT NULL,
	number_of_curves INTEGER NOT NULL,
	seed INTEGER NOT NULL,
	safe_f REAL NOT NULL,
	car25 REAL NOT NULL,
	tail_risk REAL NOT NULL,
	iterations INTEGER NOT NULL,
	converged INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created);
`
