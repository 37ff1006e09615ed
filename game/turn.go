package game

// TakeTurn plays one turn for seat and returns the number of dice thrown.
//
// An eliminated seat does nothing. Otherwise the seat throws
// min(coins, cfg.Dice()) dice, a count fixed before the first die resolves,
// and each die moves at most one coin.
func TakeTurn(s State, seat int, cfg Config, sampler Sampler) int {
	if s[seat] == 0 {
		return 0
	}

	thrown := min(s[seat], cfg.Dice())
	for range thrown {
		apply(s, seat, cfg.partition.Classify(sampler.Float64()))
	}
	return thrown
}

// apply resolves one die against the live balance of seat. A non-keep
// outcome on an empty seat is a no-op: nothing is taken and nothing is
// passed, so balances never go negative and no coin is created.
func apply(s State, seat int, outcome Outcome) {
	if outcome == Keep || s[seat] == 0 {
		return
	}

	s[seat]--
	switch outcome {
	case Left:
		s[s.left(seat)]++
	case Right:
		s[s.right(seat)]++
	}
}
