package dynamo

import "math"

// Point is one state of the trajectory. Integration produces new values
// rather than mutating existing ones.
type Point struct {
	X, Y, Z float64
}

func (p Point) Add(o Point) Point     { return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p Point) Sub(o Point) Point     { return Point{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s, p.Z * s} }
func (p Point) Norm() float64         { return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z) }
func (p Point) Axis(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

func (p Point) IsValid() bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Params are the Lorenz coefficients.
type Params struct {
	Sigma float64 `yaml:"sigma"`
	Rho   float64 `yaml:"rho"`
	Beta  float64 `yaml:"beta"`
}

func DefaultParams() Params { return Params{Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0} }

// Seed is the initial point every trajectory starts from.
var Seed = Point{1, 1, 1}

type System interface {
	Derive(p Point) Point
}

type Integrator interface {
	Step(sys System, p Point, dt float64) Point
}
