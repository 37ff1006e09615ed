package experiments

import (
	"fmt"
	"lcr/engine"
	"lcr/experiments/metrics"
	"lcr/game"
	"lcr/meta"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *Experiment)

// SamplerFactory returns the private sampler of a worker. It is called
// once per worker, in worker order, from the goroutine running the experiment.
type SamplerFactory func(worker int) game.Sampler

func WithWorkers(workers int) Option {
	return func(e *Experiment) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// WithSeed fixes the master seed of the default samplers. Together with a
// fixed worker count it makes a run reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Experiment) {
		e.seed = seed
	}
}

func WithSamplers(factory SamplerFactory) Option {
	return func(e *Experiment) {
		if factory != nil {
			e.samplers = factory
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Experiment) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithMetrics() Option {
	return func(e *Experiment) {
		e.metrics = metrics.NewCollector()
	}
}

type Experiment struct {
	config   game.Config
	workers  int
	seed     uint64
	samplers SamplerFactory
	maxTurns int
	metrics  metrics.Collector
}

func NewExperiment(config game.Config, options ...Option) *Experiment {
	e := &Experiment{ // Default values
		config:   config,
		workers:  meta.WORKERS,
		maxTurns: meta.MAX_TURNS,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays iterations independent games of config and aggregates them.
func Run(config game.Config, iterations int, options ...Option) (Stats, error) {
	return NewExperiment(config, options...).Run(iterations)
}

func (e *Experiment) Run(iterations int) (Stats, error) {
	if e.config.Players() == 0 {
		return Stats{}, fmt.Errorf("%w: configuration was not built by game.NewConfig", game.ErrInvalidConfig)
	}
	if iterations < 1 {
		return Stats{}, fmt.Errorf("%w: simulations must be at least 1, got %d", game.ErrInvalidConfig, iterations)
	}
	if e.config.IsDegenerate() {
		log.Warn().Msgf("center takes %.0f%% of the outcome weight, games may end with every seat eliminated", 100*e.config.Probability(game.Center))
	}

	workers := min(e.workers, iterations)
	seed, samplers := e.samplerFactory(workers)
	runner := engine.NewRunner(e.config, engine.WithMaxTurns(e.maxTurns), engine.WithCollector(e.metrics))

	log.Info().Msgf("starting experiment of %d games with %d players on %d workers...", iterations, e.config.Players(), workers)
	start := time.Now()
	e.metrics.Start(workers)

	tallies := make([]tally, workers)
	var wg sync.WaitGroup
	for worker, games := range split(iterations, workers) {
		sampler := samplers(worker)
		wg.Add(1)
		go func() {
			defer wg.Done()
			tallies[worker] = e.work(worker, games, runner, sampler)
		}()
	}
	wg.Wait()

	total := newTally(e.config.Players())
	for _, t := range tallies {
		total.merge(t)
	}

	stats := Stats{
		Iterations:    iterations,
		Workers:       workers,
		Seed:          seed,
		WinCounts:     total.wins,
		Rotations:     summarize(total.rotations),
		AllEliminated: total.allEliminated,
		Truncated:     total.truncated,
		StartTime:     start,
		EndTime:       time.Now(),
		Metric:        e.metrics.Complete(),
	}

	if stats.Truncated > 0 {
		log.Warn().Msgf("%d of %d games hit the cap of %d turns", stats.Truncated, iterations, e.maxTurns)
	}
	if stats.AllEliminated > 0 {
		log.Warn().Msgf("%d of %d games ended with every seat eliminated, seat 0 was credited", stats.AllEliminated, iterations)
	}
	log.Info().Msgf("completed experiment of %d games", total.games())

	return stats, nil
}

func (e *Experiment) work(worker, games int, runner *engine.Runner, sampler game.Sampler) tally {
	t := newTally(e.config.Players())
	for i := range games {
		if i%meta.PROGRESS_INTERVAL == 0 {
			log.Debug().Msgf("worker %d starting game %d of %d...", worker, i+1, games)
		}
		t.add(runner.Run(sampler))
		e.metrics.AddGame()
	}
	return t
}

// samplerFactory returns the injected factory, or one handing every worker
// a generator seeded by a distinct draw from a master generator.
func (e *Experiment) samplerFactory(workers int) (uint64, SamplerFactory) {
	if e.samplers != nil {
		return 0, e.samplers
	}

	seed := e.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	master := rand.New(rand.NewSource(seed))
	seeds := make([]uint64, workers)
	for i := range seeds {
		seeds[i] = master.Uint64()
	}

	return seed, func(worker int) game.Sampler {
		return rand.New(rand.NewSource(seeds[worker]))
	}
}

// split divides iterations into workers shares, the first workers taking
// the remainder.
func split(iterations, workers int) []int {
	shares := make([]int, workers)
	for i := range shares {
		shares[i] = iterations / workers
		if i < iterations%workers {
			shares[i]++
		}
	}
	return shares
}
