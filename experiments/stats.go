package experiments

import (
	"lcr/engine"
	"lcr/experiments/metrics"
	"slices"
	"time"
)

// Summary describes the distribution of rotations per game.
type Summary struct {
	Min    int
	Mean   float64
	Median float64
	Max    int
}

type Stats struct {
	Iterations    int
	Workers       int
	Seed          uint64 // Master seed of the default samplers, 0 with injected samplers
	WinCounts     []int  // Wins per seat
	Rotations     Summary
	AllEliminated int // Games that ended with no coins left anywhere
	Truncated     int // Games stopped by the turn cap
	StartTime     time.Time
	EndTime       time.Time
	Metric        metrics.RunMetric
}

// WinPercentages returns each seat's share of the games played.
func (s Stats) WinPercentages() []float64 {
	percentages := make([]float64, len(s.WinCounts))
	if s.Iterations == 0 {
		return percentages
	}
	for seat, wins := range s.WinCounts {
		percentages[seat] = float64(wins) / float64(s.Iterations)
	}
	return percentages
}

// tally accumulates the results of one worker.
type tally struct {
	wins          []int
	rotations     []int
	allEliminated int
	truncated     int
}

func newTally(players int) tally {
	return tally{wins: make([]int, players)}
}

func (t *tally) add(result engine.Result) {
	t.wins[result.Winner]++
	t.rotations = append(t.rotations, result.Rotations)
	if result.AllEliminated {
		t.allEliminated++
	}
	if result.Truncated {
		t.truncated++
	}
}

// merge folds other into t. Merging is associative and commutative up to
// the order of rotations, which summarize does not depend on.
func (t *tally) merge(other tally) {
	for seat, wins := range other.wins {
		t.wins[seat] += wins
	}
	t.rotations = append(t.rotations, other.rotations...)
	t.allEliminated += other.allEliminated
	t.truncated += other.truncated
}

func (t tally) games() int {
	return len(t.rotations)
}

func summarize(values []int) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	sum := 0
	for _, v := range sorted {
		sum += v
	}

	n := len(sorted)
	median := float64(sorted[n/2])
	if n%2 == 0 {
		median = float64(sorted[n/2-1]+sorted[n/2]) / 2
	}

	return Summary{
		Min:    sorted[0],
		Mean:   float64(sum) / float64(n),
		Median: median,
		Max:    sorted[n-1],
	}
}
