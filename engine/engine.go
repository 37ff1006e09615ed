package engine

import "lcr/game"

// StartingSeat is the seat that opens every rotation.
const StartingSeat = 0

type Engine interface {
	// Run plays a game till one seat is left holding coins or the turn cap is reached
	Run(sampler game.Sampler) Result
}

type Result struct {
	Winner        int  // Seat with the most coins, lowest seat on ties
	Rotations     int  // Passes around the table that were started
	Turns         int  // Single-seat turns taken
	AllEliminated bool // No seat holds a coin
	Truncated     bool // Stopped by the turn cap with several seats still active
}
