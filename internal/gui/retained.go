package gui

import (
	"image/color"

	"github.com/san-kum/lorenz/internal/render"
)

// drawer is the primitive set a window backend provides.
type drawer interface {
	fill(c color.RGBA)
	fillRect(x, y, w, h float64, c color.RGBA)
	polyline(pts []render.Vec2, c color.RGBA)
}

// retained forwards drawing to a backend and keeps the polylines stroked
// since the last full clear, so a halted window can be repainted without
// advancing the animation.
type retained struct {
	render.Recorder
	bg  color.RGBA
	out drawer
}

func newRetained(w, h float64, bg color.RGBA, out drawer) *retained {
	return &retained{Recorder: *render.NewRecorder(w, h), bg: bg, out: out}
}

func (r *retained) ClearRect(x, y, w, h float64) {
	r.Recorder.ClearRect(x, y, w, h)
	if render.CoversSurface(x, y, w, h, r.W, r.H) {
		r.out.fill(r.bg)
		return
	}
	r.out.fillRect(x, y, w, h, r.bg)
}

func (r *retained) Stroke() {
	r.Recorder.Stroke()
	if pts := r.PathPoints(); len(pts) >= 2 {
		r.out.polyline(pts, r.StrokeColor())
	}
}

// repaint draws the retained content again.
func (r *retained) repaint() {
	r.out.fill(r.bg)
	for i, line := range r.Polylines {
		if len(line) >= 2 {
			r.out.polyline(line, r.Colors[i])
		}
	}
}
