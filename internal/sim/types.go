package sim

import "github.com/san-kum/lorenz/internal/dynamo"

// Metric accumulates a scalar over the points a simulation visits.
type Metric interface {
	Name() string
	Observe(p dynamo.Point)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(p dynamo.Point, step int)
}

type Config struct {
	Dt    float64
	Steps int
	// ValidateState stops the run at the first non-finite point.
	ValidateState bool
}

type Result struct {
	Points     []dynamo.Point
	StepsTaken int
	Metrics    map[string]float64
}

// Axis returns one coordinate of every point.
func (r *Result) Axis(i int) []float64 {
	out := make([]float64, len(r.Points))
	for j, p := range r.Points {
		out[j] = p.Axis(i)
	}
	return out
}
