package metrics

import "github.com/san-kum/lorenz/internal/dynamo"

// Energy tracks the largest value of V = rho*x^2 + sigma*y^2 +
// sigma*(z-2rho)^2 seen. V decreases outside a bounded ellipsoid, so it
// stays bounded on the attractor.
type Energy struct {
	p   dynamo.Params
	max float64
	n   int
}

func NewEnergy(p dynamo.Params) *Energy { return &Energy{p: p} }

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Of(pt dynamo.Point) float64 {
	dz := pt.Z - 2*e.p.Rho
	return e.p.Rho*pt.X*pt.X + e.p.Sigma*pt.Y*pt.Y + e.p.Sigma*dz*dz
}

func (e *Energy) Observe(pt dynamo.Point) {
	v := e.Of(pt)
	if e.n == 0 || v > e.max {
		e.max = v
	}
	e.n++
}

func (e *Energy) Value() float64 { return e.max }

func (e *Energy) Reset() {
	e.max = 0
	e.n = 0
}
