package render

import (
	"image/color"
	"math"
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Surface is the drawing context frames are rendered onto. Coordinates are
// logical pixels in [0, w) x [0, h) as reported by Size.
type Surface interface {
	Size() (w, h float64)
	ClearRect(x, y, w, h float64)
	BeginPath()
	LineTo(x, y float64)
	SetStrokeColor(c color.RGBA)
	Stroke()
}

// PathRecorder keeps the current path of a Surface. The first LineTo after
// BeginPath starts the sub-path. Non-finite coordinates are ignored, the
// path continues from the last finite point.
type PathRecorder struct {
	points []Vec2
	stroke color.RGBA
}

func (r *PathRecorder) BeginPath() { r.points = r.points[:0] }

func (r *PathRecorder) LineTo(x, y float64) {
	v := Vec2{x, y}
	if !v.IsValid() {
		return
	}
	r.points = append(r.points, v)
}

func (r *PathRecorder) SetStrokeColor(c color.RGBA) { r.stroke = c }
func (r *PathRecorder) StrokeColor() color.RGBA     { return r.stroke }
func (r *PathRecorder) PathPoints() []Vec2          { return r.points }

// Segments calls fn for every line segment of the current path.
func (r *PathRecorder) Segments(fn func(a, b Vec2)) {
	for i := 1; i < len(r.points); i++ {
		fn(r.points[i-1], r.points[i])
	}
}

// CoversSurface reports whether the rect spans the whole w x h area.
func CoversSurface(x, y, w, h, sw, sh float64) bool {
	return x <= 0 && y <= 0 && x+w >= sw && y+h >= sh
}

// Discard is a Surface that draws nothing. It counts calls so headless runs
// can report them.
type Discard struct {
	PathRecorder
	W, H    float64
	Clears  int
	Strokes int
}

func NewDiscard(w, h float64) *Discard { return &Discard{W: w, H: h} }

func (d *Discard) Size() (float64, float64)     { return d.W, d.H }
func (d *Discard) ClearRect(_, _, _, _ float64) { d.Clears++ }
func (d *Discard) Stroke()                      { d.Strokes++ }

// Recorder is a Surface that keeps every stroked polyline since the last
// full clear.
type Recorder struct {
	PathRecorder
	W, H      float64
	Clears    int
	Strokes   int
	Polylines [][]Vec2
	Colors    []color.RGBA
}

func NewRecorder(w, h float64) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Clears++
	if CoversSurface(x, y, w, h, r.W, r.H) {
		r.Polylines = r.Polylines[:0]
		r.Colors = r.Colors[:0]
	}
}

func (r *Recorder) Stroke() {
	r.Strokes++
	line := make([]Vec2, len(r.points))
	copy(line, r.points)
	r.Polylines = append(r.Polylines, line)
	r.Colors = append(r.Colors, r.stroke)
}

// Clip trims segment a-b to the rectangle [0, w] x [0, h] (Liang-Barsky).
// ok is false when no part of the segment is inside.
func Clip(a, b Vec2, w, h float64) (Vec2, Vec2, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := b.X-a.X, b.Y-a.Y
	edges := [4][2]float64{
		{-dx, a.X},
		{dx, w - a.X},
		{-dy, a.Y},
		{dy, h - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return Vec2{a.X + t0*dx, a.Y + t0*dy}, Vec2{a.X + t1*dx, a.Y + t1*dy}, true
}

// Tee forwards every call to all of its surfaces. Size is taken from the
// first one.
type Tee struct {
	surfaces []Surface
}

func NewTee(surfaces ...Surface) *Tee { return &Tee{surfaces: surfaces} }

func (t *Tee) Size() (float64, float64) {
	if len(t.surfaces) == 0 {
		return 0, 0
	}
	return t.surfaces[0].Size()
}

func (t *Tee) ClearRect(x, y, w, h float64) {
	for _, s := range t.surfaces {
		s.ClearRect(x, y, w, h)
	}
}

func (t *Tee) BeginPath() {
	for _, s := range t.surfaces {
		s.BeginPath()
	}
}

func (t *Tee) LineTo(x, y float64) {
	for _, s := range t.surfaces {
		s.LineTo(x, y)
	}
}

func (t *Tee) SetStrokeColor(c color.RGBA) {
	for _, s := range t.surfaces {
		s.SetStrokeColor(c)
	}
}

func (t *Tee) Stroke() {
	for _, s := range t.surfaces {
		s.Stroke()
	}
}
