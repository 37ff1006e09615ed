package game

// Sampler yields uniform samples in [0, 1). Each die thrown draws one sample.
//
// *rand.Rand from golang.org/x/exp/rand satisfies it. A Sampler is not
// expected to be safe for concurrent use, every worker owns its own.
type Sampler interface {
	Float64() float64
}
