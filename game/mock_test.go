package game

// Samples landing in each zone of a uniform partition.
const (
	keepSample   = 0.1
	centerSample = 0.3
	leftSample   = 0.6
	rightSample  = 0.9
)

type scriptedSampler struct {
	samples []float64
	drawn   int
}

func (s *scriptedSampler) Float64() float64 {
	sample := s.samples[s.drawn%len(s.samples)]
	s.drawn++
	return sample
}

func uniform() Weights {
	return Weights{Keep: 1, Center: 1, Left: 1, Right: 1}
}

func mustConfig(players, dice, coins int, weights Weights) Config {
	cfg, err := NewConfig(players, dice, coins, weights)
	if err != nil {
		panic(err)
	}
	return cfg
}
