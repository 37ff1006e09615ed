package game

import "fmt"

type Outcome int

const (
	Keep Outcome = iota
	Center
	Left
	Right
)

func (o Outcome) String() string {
	switch o {
	case Keep:
		return "keep"
	case Center:
		return "center"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Weights are the relative likelihoods of each die outcome.
type Weights struct {
	Keep   float64 `json:"keep"`
	Center float64 `json:"center"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

func (w Weights) sum() float64 {
	return w.Keep + w.Center + w.Left + w.Right
}

func (w Weights) ordered() [4]float64 {
	return [4]float64{w.Keep, w.Center, w.Left, w.Right}
}

type threshold struct {
	bound   float64
	outcome Outcome
}

// Partition divides [0, 1) into Keep, Center, Left and Right zones, in that order.
type Partition [4]threshold

func newPartition(w Weights) Partition {
	total := w.sum()
	var p Partition
	cumulative := 0.0
	for i, weight := range w.ordered() {
		cumulative += weight / total
		p[i] = threshold{bound: cumulative, outcome: Outcome(i)}
	}
	return p
}

// Classify returns the outcome of the first zone whose upper bound exceeds
// sample. Zero-weight zones are empty and never selected. A sample at or
// past the last bound, possible through rounding, lands in the last
// non-empty zone.
func (p Partition) Classify(sample float64) Outcome {
	for _, t := range p {
		if sample < t.bound {
			return t.outcome
		}
	}
	for i := len(p) - 1; i > 0; i-- {
		if p[i].bound > p[i-1].bound {
			return p[i].outcome
		}
	}
	return p[0].outcome
}

// Bounds returns the cumulative upper bound of each zone.
func (p Partition) Bounds() [4]float64 {
	var bounds [4]float64
	for i, t := range p {
		bounds[i] = t.bound
	}
	return bounds
}
