package metrics

import (
	"sync/atomic"
	"time"
)

type RunMetric struct {
	Workers   int
	StartTime time.Time
	Duration  time.Duration
	Games     int
	Turns     int
	Dice      int
}

// Collector counts work done across every worker of an experiment.
// Implementations are safe for concurrent use.
type Collector interface {
	Start(workers int)
	AddTurn(dice int)
	AddGame()
	Complete() RunMetric
}

type collector struct {
	workers   int
	startTime time.Time
	games     atomic.Int64
	turns     atomic.Int64
	dice      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(workers int) {
	m.startTime = time.Now()
	m.workers = workers
}

func (m *collector) AddTurn(dice int) {
	m.turns.Add(1)
	m.dice.Add(int64(dice))
}

func (m *collector) AddGame() {
	m.games.Add(1)
}

func (m *collector) Complete() RunMetric {
	return RunMetric{
		Workers:   m.workers,
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Games:     int(m.games.Load()),
		Turns:     int(m.turns.Load()),
		Dice:      int(m.dice.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(workers int)   {}
func (m *dummyCollector) AddTurn(dice int)    {}
func (m *dummyCollector) AddGame()            {}
func (m *dummyCollector) Complete() RunMetric { return RunMetric{} }
