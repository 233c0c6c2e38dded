// Package journal persists risk-normalization runs so parameter sweeps can
// be compared after the fact. Two backends share one record type: an
// append-only CSV file and a SQLite database.
package journal

import "time"

// RunRecord is one completed (or failed) risk normalization.
type RunRecord struct {
	RunID      string
	Created    time.Time
	TradesFile string

	// Config echo, so a journaled run is self-describing.
	ForecastLength    int
	InitialCapital    float64
	TailPercentile    float64
	DrawdownTolerance float64
	NumberOfCurves    int
	Seed              uint64

	// Outcome.
	SafeF      float64
	CAR25      float64
	TailRisk   float64
	Iterations int
	Converged  bool
}

// Journal records completed runs.
type Journal interface {
	RecordRun(RunRecord) error
	Close() error
}
