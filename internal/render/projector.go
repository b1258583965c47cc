package render

import (
	"image/color"
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// Projector owns the rotation angle. The angle only grows; trigonometric
// periodicity does the wrapping.
type Projector struct {
	Angle float64
	Step  float64
	Pivot float64
}

func NewProjector(step, pivot float64) *Projector {
	return &Projector{Step: step, Pivot: pivot}
}

// Advance increments the angle by one step and returns it.
func (p *Projector) Advance() float64 {
	p.Angle += p.Step
	return p.Angle
}

// Project maps a scaled point to screen coordinates at the current angle.
func (p *Projector) Project(pt dynamo.Point) Vec2 {
	sin, cos := math.Sincos(p.Angle)
	return Vec2{
		X: (pt.X-p.Pivot)*cos - (pt.Y-p.Pivot)*sin + p.Pivot,
		Y: pt.Z,
	}
}

// Renderer strokes the projected trajectory as one connected polyline.
type Renderer struct {
	Projector *Projector
	Stroke    color.RGBA
}

func NewRenderer(proj *Projector, stroke color.RGBA) *Renderer {
	return &Renderer{Projector: proj, Stroke: stroke}
}

// Draw advances the rotation and strokes pts onto s. It returns the angle
// the frame was drawn at.
func (r *Renderer) Draw(s Surface, pts []dynamo.Point) float64 {
	angle := r.Projector.Advance()
	s.BeginPath()
	for _, pt := range pts {
		v := r.Projector.Project(pt)
		s.LineTo(v.X, v.Y)
	}
	s.SetStrokeColor(r.Stroke)
	s.Stroke()
	return angle
}
