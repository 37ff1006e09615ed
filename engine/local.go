package engine

import (
	"lcr/experiments/metrics"
	"lcr/game"
	"lcr/meta"

	"github.com/rs/zerolog/log"
)

type Option func(r *Runner)

// WithMaxTurns caps the single-seat turns of a game.
func WithMaxTurns(turns int) Option {
	return func(r *Runner) {
		if turns > 0 {
			r.maxTurns = turns
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(r *Runner) {
		if collector != nil {
			r.metrics = collector
		}
	}
}

// Runner plays games of one configuration. It keeps no per-game state, so
// a single Runner may be shared by workers as long as each brings its own
// sampler.
type Runner struct {
	config   game.Config
	maxTurns int
	metrics  metrics.Collector
}

func NewRunner(config game.Config, options ...Option) *Runner {
	r := &Runner{ // Default values
		config:   config,
		maxTurns: meta.MAX_TURNS,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// RunGame plays a single game with the default turn cap.
func RunGame(config game.Config, sampler game.Sampler) Result {
	return NewRunner(config).Run(sampler)
}

// Run plays a fresh game to completion.
func (r *Runner) Run(sampler game.Sampler) Result {
	return r.play(game.NewState(r.config), sampler)
}

// play advances state seat by seat, checking for a winner after every turn.
func (r *Runner) play(state game.State, sampler game.Sampler) Result {
	var result Result
	seat := StartingSeat
	for !state.Over() && result.Turns < r.maxTurns {
		if seat == StartingSeat {
			result.Rotations++
		}

		dice := game.TakeTurn(state, seat, r.config, sampler)
		r.metrics.AddTurn(dice)
		result.Turns++

		seat = (seat + 1) % len(state)
	}

	if !state.Over() {
		log.Debug().Msgf("game stopped after %d turns with %d seats still active", result.Turns, state.Active())
		result.Truncated = true
	}
	result.AllEliminated = state.Active() == 0
	result.Winner = state.Leader()
	return result
}
