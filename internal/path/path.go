// Package path holds the growing trajectory: an ordered, bounded sequence
// of points in simulation order.
package path

import "github.com/san-kum/lorenz/internal/dynamo"

// Path is an ordered sequence of points, oldest first.
type Path struct {
	points []dynamo.Point
}

// New returns a path seeded with a single point.
func New(seed dynamo.Point) *Path {
	return &Path{points: []dynamo.Point{seed}}
}

func (p *Path) Len() int { return len(p.points) }

// Points returns the live backing slice. Callers must not retain it across
// Extend or Trim.
func (p *Path) Points() []dynamo.Point { return p.points }

func (p *Path) Last() (dynamo.Point, error) {
	if len(p.points) == 0 {
		return dynamo.Point{}, dynamo.ErrEmptyPath
	}
	return p.points[len(p.points)-1], nil
}

// Extend appends steps new points, each integrated from the one appended
// just before it.
func (p *Path) Extend(sys dynamo.System, integ dynamo.Integrator, dt float64, steps int) error {
	last, err := p.Last()
	if err != nil {
		return err
	}
	for i := 0; i < steps; i++ {
		last = integ.Step(sys, last, dt)
		p.points = append(p.points, last)
	}
	return nil
}

// Trim drops points from the front until at most limit remain. It returns
// how many were dropped.
func (p *Path) Trim(limit int) int {
	dropped := 0
	for len(p.points) > limit {
		p.points[0] = dynamo.Point{}
		p.points = p.points[1:]
		dropped++
	}
	if dropped > 0 && cap(p.points) > 4*limit {
		compact := make([]dynamo.Point, len(p.points), 2*limit)
		copy(compact, p.points)
		p.points = compact
	}
	return dropped
}

// Axis returns one coordinate of every point, in path order.
func (p *Path) Axis(i int) []float64 {
	out := make([]float64, len(p.points))
	for j, pt := range p.points {
		out[j] = pt.Axis(i)
	}
	return out
}
