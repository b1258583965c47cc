package integrators

import "github.com/san-kum/lorenz/internal/dynamo"

// Sequential advances one coordinate at a time and feeds each updated
// coordinate into the derivatives of the ones after it (x, then y, then z).
// It reproduces the update order of an in-place accumulator.
type Sequential struct{}

func NewSequential() *Sequential {
	return &Sequential{}
}

func (s *Sequential) Step(sys dynamo.System, p dynamo.Point, dt float64) dynamo.Point {
	next := p
	next.X = p.X + sys.Derive(next).X*dt
	next.Y = p.Y + sys.Derive(next).Y*dt
	next.Z = p.Z + sys.Derive(next).Z*dt
	return next
}
