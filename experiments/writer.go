package experiments

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"lcr/game"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Setup struct {
	Players    int           `json:"players"`
	Dice       int           `json:"dice"`
	Coins      int           `json:"coins"`
	Weights    game.Weights  `json:"weights"`
	Iterations int           `json:"simulations"`
	Workers    int           `json:"workers"`
	Seed       uint64        `json:"seed"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    time.Time     `json:"endTime"`
	Duration   time.Duration `json:"duration"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// Write stores the setup and the results of an experiment.
func (w *Writer) Write(config game.Config, stats Stats) error {
	if err := w.WriteSetup(config, stats); err != nil {
		return err
	}
	if err := w.WriteWinCounts(stats); err != nil {
		return err
	}
	return w.WriteRotations(stats)
}

func (w *Writer) WriteSetup(config game.Config, stats Stats) error {
	setup := Setup{
		Players:    config.Players(),
		Dice:       config.Dice(),
		Coins:      config.Coins(),
		Weights:    config.Weights(),
		Iterations: stats.Iterations,
		Workers:    stats.Workers,
		Seed:       stats.Seed,
		StartTime:  stats.StartTime,
		EndTime:    stats.EndTime,
		Duration:   stats.EndTime.Sub(stats.StartTime),
	}

	setupPath := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(setupPath)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}

	return nil
}

func (w *Writer) WriteWinCounts(stats Stats) error {
	path := filepath.Join(w.baseDir, "win_counts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create win counts file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"seat", "wins", "percentage"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write win counts header: %w", err)
	}

	percentages := stats.WinPercentages()
	for seat, wins := range stats.WinCounts {
		row := []string{
			strconv.Itoa(seat),
			strconv.Itoa(wins),
			strconv.FormatFloat(percentages[seat], 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write win counts row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (w *Writer) WriteRotations(stats Stats) error {
	path := filepath.Join(w.baseDir, "rotations.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create rotations file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"min", "mean", "median", "max", "all_eliminated", "truncated", "turns", "dice"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write rotations header: %w", err)
	}

	row := []string{
		strconv.Itoa(stats.Rotations.Min),
		strconv.FormatFloat(stats.Rotations.Mean, 'f', -1, 64),
		strconv.FormatFloat(stats.Rotations.Median, 'f', -1, 64),
		strconv.Itoa(stats.Rotations.Max),
		strconv.Itoa(stats.AllEliminated),
		strconv.Itoa(stats.Truncated),
		strconv.Itoa(stats.Metric.Turns),
		strconv.Itoa(stats.Metric.Dice),
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("failed to write rotations row: %w", err)
	}

	writer.Flush()
	return writer.Error()
}
