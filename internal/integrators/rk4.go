package integrators

import "github.com/san-kum/lorenz/internal/dynamo"

type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(sys dynamo.System, p dynamo.Point, dt float64) dynamo.Point {
	k1 := sys.Derive(p)
	k2 := sys.Derive(p.Add(k1.Scale(dt * 0.5)))
	k3 := sys.Derive(p.Add(k2.Scale(dt * 0.5)))
	k4 := sys.Derive(p.Add(k3.Scale(dt)))

	sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return p.Add(sum.Scale(dt / 6.0))
}
