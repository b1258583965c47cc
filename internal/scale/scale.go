// Package scale maps the drifting trajectory into a fixed coordinate cube
// so it keeps a constant on-screen size.
//
// Two modes exist. [Reference] divides both x and z by the range from the
// x minimum to the z maximum, reproducing the classic rendering of this
// animation. [Independent] normalizes each axis by its own range, so every
// output coordinate lies in [0, size].
package scale

import (
	"fmt"
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
)

type Mode int

const (
	Reference Mode = iota
	Independent
)

func (m Mode) String() string {
	switch m {
	case Reference:
		return "reference"
	case Independent:
		return "independent"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "reference", "":
		return Reference, nil
	case "independent":
		return Independent, nil
	default:
		return Reference, fmt.Errorf("unknown scale mode: %s", s)
	}
}

// Bounds is the componentwise min and max of a set of points.
type Bounds struct {
	Min, Max dynamo.Point
}

func Compute(points []dynamo.Point) (Bounds, error) {
	if len(points) == 0 {
		return Bounds{}, dynamo.ErrEmptyPath
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X, b.Max.X = math.Min(b.Min.X, p.X), math.Max(b.Max.X, p.X)
		b.Min.Y, b.Max.Y = math.Min(b.Min.Y, p.Y), math.Max(b.Max.Y, p.Y)
		b.Min.Z, b.Max.Z = math.Min(b.Min.Z, p.Z), math.Max(b.Max.Z, p.Z)
	}
	return b, nil
}

// Extent returns the divisor ranges the mode uses for x, y and z.
func (b Bounds) Extent(m Mode) dynamo.Point {
	if m == Independent {
		return b.Max.Sub(b.Min)
	}
	xz := b.Max.Z - b.Min.X
	return dynamo.Point{X: xz, Y: b.Max.Y - b.Min.Y, Z: xz}
}

// Origin returns the offsets the mode subtracts from x, y and z.
func (b Bounds) Origin(m Mode) dynamo.Point {
	if m == Independent {
		return b.Min
	}
	return dynamo.Point{X: b.Min.X, Y: b.Min.Y, Z: b.Min.X}
}

// Degenerate reports whether scaling with mode m divides by zero.
func (b Bounds) Degenerate(m Mode) bool {
	e := b.Extent(m)
	return e.X == 0 || e.Y == 0 || e.Z == 0 || !e.IsValid()
}

type Scaler struct {
	Mode Mode
	Size float64
}

func New(mode Mode, size float64) *Scaler {
	return &Scaler{Mode: mode, Size: size}
}

// Scale maps every point into the cube and returns the new points with the
// bounds they were computed from. The input is not modified. A zero extent
// yields non-finite coordinates; that is reported through Bounds.Degenerate,
// never as an error.
func (s *Scaler) Scale(points []dynamo.Point) ([]dynamo.Point, Bounds, error) {
	b, err := Compute(points)
	if err != nil {
		return nil, b, err
	}
	o, e := b.Origin(s.Mode), b.Extent(s.Mode)
	out := make([]dynamo.Point, len(points))
	for i, p := range points {
		out[i] = dynamo.Point{
			X: s.Size * (p.X - o.X) / e.X,
			Y: s.Size * (p.Y - o.Y) / e.Y,
			Z: s.Size * (p.Z - o.Z) / e.Z,
		}
	}
	return out, b, nil
}
