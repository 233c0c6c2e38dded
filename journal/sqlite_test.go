package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantlab/risknorm/pkg/id"
)

func sampleRun(runID string) RunRecord {
	return RunRecord{
		RunID:             runID,
		Created:           time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		TradesFile:        "trades.csv",
		ForecastLength:    500,
		InitialCapital:    100000,
		TailPercentile:    5,
		DrawdownTolerance: 0.10,
		NumberOfCurves:    1000,
		Seed:              42,
		SafeF:             0.1264,
		CAR25:             10.8,
		TailRisk:          0.1005,
		Iterations:        8,
		Converged:         true,
	}
}

func TestSQLiteRecordAndGet(t *testing.T) {
	t.Parallel()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "runs.sqlite"))
	require.NoError(t, err)
	defer j.Close()

	rec := sampleRun(id.New())
	require.NoError(t, j.RecordRun(rec))

	got, err := j.GetRun(rec.RunID)
	require.NoError(t, err)
	assert.Equal(t, rec.RunID, got.RunID)
	assert.Equal(t, rec.SafeF, got.SafeF)
	assert.Equal(t, rec.CAR25, got.CAR25)
	assert.Equal(t, rec.Seed, got.Seed)
	assert.Equal(t, rec.Converged, got.Converged)
	assert.True(t, rec.Created.Equal(got.Created))
}

func TestSQLiteGetMissing(t *testing.T) {
	t.Parallel()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "runs.sqlite"))
	require.NoError(t, err)
	defer j.Close()

	_, err = j.GetRun("nope")
	assert.Error(t, err)
}

func TestSQLiteListRuns(t *testing.T) {
	t.Parallel()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "runs.sqlite"))
	require.NoError(t, err)
	defer j.Close()

	var ids []string
	for i := 0; i < 3; i++ {
		rec := sampleRun(id.New())
		rec.SafeF = float64(i)
		require.NoError(t, j.RecordRun(rec))
		ids = append(ids, rec.RunID)
	}

	runs, err := j.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	// ULIDs sort by creation time, so newest first means reverse insert order.
	assert.Equal(t, ids[2], runs[0].RunID)
	assert.Equal(t, ids[0], runs[2].RunID)

	limited, err := j.ListRuns(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
