package game

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the immutable setup of a game. Build it with NewConfig.
type Config struct {
	players   int
	dice      int
	coins     int
	weights   Weights
	partition Partition
}

// NewConfig validates the setup and precomputes the outcome partition.
// Every violated constraint is reported, each wrapping ErrInvalidConfig.
func NewConfig(players, dice, coins int, weights Weights) (Config, error) {
	var errs []error
	if players < 2 {
		errs = append(errs, fmt.Errorf("%w: players must be at least 2, got %d", ErrInvalidConfig, players))
	}
	if dice < 1 {
		errs = append(errs, fmt.Errorf("%w: dice must be at least 1, got %d", ErrInvalidConfig, dice))
	}
	if coins < 1 {
		errs = append(errs, fmt.Errorf("%w: coins must be at least 1, got %d", ErrInvalidConfig, coins))
	}
	errs = append(errs, validateWeights(weights)...)
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	return Config{
		players:   players,
		dice:      dice,
		coins:     coins,
		weights:   weights,
		partition: newPartition(weights),
	}, nil
}

func validateWeights(w Weights) []error {
	var errs []error
	for i, weight := range w.ordered() {
		if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			errs = append(errs, fmt.Errorf("%w: %s weight must be a finite non-negative number, got %g", ErrInvalidConfig, Outcome(i), weight))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	if w.sum() <= 0 {
		return []error{fmt.Errorf("%w: outcome weights must sum to more than 0", ErrInvalidConfig)}
	}
	if math.IsInf(w.sum(), 0) {
		return []error{fmt.Errorf("%w: outcome weights must sum to a finite number", ErrInvalidConfig)}
	}
	// Only keeps means no coin ever moves, so no game could end
	if w.Center == 0 && w.Left == 0 && w.Right == 0 {
		return []error{fmt.Errorf("%w: at least one of center, left or right weight must be positive", ErrInvalidConfig)}
	}
	return nil
}

func (c Config) Players() int { return c.players }

// Dice is the most dice a player throws in one turn.
func (c Config) Dice() int { return c.dice }

// Coins is the starting balance of every seat.
func (c Config) Coins() int { return c.coins }

func (c Config) Weights() Weights { return c.weights }

func (c Config) Partition() Partition { return c.partition }

// Probability returns the normalized likelihood of an outcome.
func (c Config) Probability(o Outcome) float64 {
	w := c.weights.ordered()
	if o < Keep || o > Right {
		return 0
	}
	return w[o] / c.weights.sum()
}

// IsDegenerate reports whether Center takes at least half of the weight.
// Such games drain coins quickly and are the ones that could end with
// every seat at zero.
func (c Config) IsDegenerate() bool {
	return c.Probability(Center) >= 0.5
}
