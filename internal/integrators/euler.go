package integrators

import "github.com/san-kum/lorenz/internal/dynamo"

// Euler is the explicit forward Euler step: every derivative is taken at
// the incoming point.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamo.System, p dynamo.Point, dt float64) dynamo.Point {
	d := sys.Derive(p)
	return dynamo.Point{
		X: p.X + d.X*dt,
		Y: p.Y + d.Y*dt,
		Z: p.Z + d.Z*dt,
	}
}
