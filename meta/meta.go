// meta/meta.go
package meta

// MAX_TURNS caps the single-seat turns of one game.
const MAX_TURNS = 1_000_000

// PROGRESS_INTERVAL is the number of games between progress logs of a worker.
const PROGRESS_INTERVAL = 100

// WORKERS defines the default number of goroutines running games.
const WORKERS = 1
