package physics

import "github.com/san-kum/lorenz/internal/dynamo"

type Lorenz struct{ sigma, rho, beta float64 }

func NewLorenz(p dynamo.Params) *Lorenz { return &Lorenz{p.Sigma, p.Rho, p.Beta} }

// Derive calculates the Lorenz attractor derivatives.
func (l *Lorenz) Derive(s dynamo.Point) dynamo.Point {
	return dynamo.Point{
		X: l.sigma * (s.Y - s.X),
		Y: s.X*(l.rho-s.Z) - s.Y,
		Z: s.X*s.Y - l.beta*s.Z,
	}
}

func (l *Lorenz) Params() dynamo.Params { return dynamo.Params{Sigma: l.sigma, Rho: l.rho, Beta: l.beta} }
