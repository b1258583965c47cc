package metrics

import (
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// Stability is the fraction of points whose coordinates all stay within
// threshold.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(p dynamo.Point) {
	s.samples++
	if math.Abs(p.X) > s.threshold || math.Abs(p.Y) > s.threshold || math.Abs(p.Z) > s.threshold || !p.IsValid() {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
