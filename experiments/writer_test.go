package experiments

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lcr/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriter(t *testing.T) {
	cfg := newConfig(t, 3, 1, 3, uniform())
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	stats := Stats{
		Iterations: 4,
		Workers:    2,
		Seed:       42,
		WinCounts:  []int{1, 1, 2},
		Rotations:  Summary{Min: 2, Mean: 3.5, Median: 3, Max: 6},
		Truncated:  1,
		StartTime:  start,
		EndTime:    start.Add(time.Second),
		Metric:     metrics.RunMetric{Turns: 40, Dice: 37},
	}

	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Write(cfg, stats))

	t.Run("setup", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(w.Dir(), "setup.json"))
		require.NoError(t, err)

		var setup Setup
		require.NoError(t, json.Unmarshal(data, &setup))
		require.Equal(t, 3, setup.Players)
		require.Equal(t, uniform(), setup.Weights)
		require.Equal(t, 4, setup.Iterations)
		require.Equal(t, uint64(42), setup.Seed)
		require.True(t, start.Equal(setup.StartTime))
		require.True(t, start.Add(time.Second).Equal(setup.EndTime))
		require.Equal(t, time.Second, setup.Duration)
	})

	t.Run("win counts", func(t *testing.T) {
		records := readCSV(t, filepath.Join(w.Dir(), "win_counts.csv"))

		require.Equal(t, [][]string{
			{"seat", "wins", "percentage"},
			{"0", "1", "0.25"},
			{"1", "1", "0.25"},
			{"2", "2", "0.5"},
		}, records)
	})

	t.Run("rotations", func(t *testing.T) {
		records := readCSV(t, filepath.Join(w.Dir(), "rotations.csv"))

		require.Equal(t, [][]string{
			{"min", "mean", "median", "max", "all_eliminated", "truncated", "turns", "dice"},
			{"2", "3.5", "3", "6", "0", "1", "40", "37"},
		}, records)
	})
}

func TestWriterSetupWithoutMetrics(t *testing.T) {
	cfg := newConfig(t, 2, 1, 1, uniform())
	stats, err := Run(cfg, 20, WithSeed(5))
	require.NoError(t, err)
	require.Equal(t, metrics.RunMetric{}, stats.Metric, "Metrics are off by default")

	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.WriteSetup(cfg, stats))

	data, err := os.ReadFile(filepath.Join(w.Dir(), "setup.json"))
	require.NoError(t, err)
	var setup Setup
	require.NoError(t, json.Unmarshal(data, &setup))

	require.False(t, setup.StartTime.IsZero(), "Start time should be recorded without metrics")
	require.False(t, setup.EndTime.Before(setup.StartTime))
	require.GreaterOrEqual(t, setup.Duration, time.Duration(0))
}
