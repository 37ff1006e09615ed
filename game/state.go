package game

import "lcr/utils"

// State holds the coins of every seat, indexed by seat in rotation order.
// It is mutated in place by TakeTurn.
type State []int

// NewState seats every player with the starting balance.
func NewState(cfg Config) State {
	s := make(State, cfg.Players())
	for i := range s {
		s[i] = cfg.Coins()
	}
	return s
}

func (s State) Copy() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// Active counts the seats still holding at least one coin.
func (s State) Active() int {
	active := 0
	for _, coins := range s {
		if coins >= 1 {
			active++
		}
	}
	return active
}

// Over reports whether at most one seat holds coins.
func (s State) Over() bool {
	return s.Active() <= 1
}

func (s State) Total() int {
	total := 0
	for _, coins := range s {
		total += coins
	}
	return total
}

// Leader returns the seat with the most coins, the lowest seat on ties.
// An all-zero state yields seat 0.
func (s State) Leader() int {
	return max(utils.ArgMax(s), 0)
}

func (s State) left(seat int) int {
	return (seat - 1 + len(s)) % len(s)
}

func (s State) right(seat int) int {
	return (seat + 1) % len(s)
}
