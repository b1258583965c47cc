package gui

import (
	"image/color"
	"testing"

	"github.com/san-kum/lorenz/internal/anim"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/logger"
	"github.com/san-kum/lorenz/internal/render"
)

type fakeDrawer struct {
	fills     int
	rects     int
	polylines [][]render.Vec2
}

func (f *fakeDrawer) fill(color.RGBA)                           { f.fills++ }
func (f *fakeDrawer) fillRect(_, _, _, _ float64, _ color.RGBA) { f.rects++ }
func (f *fakeDrawer) polyline(pts []render.Vec2, _ color.RGBA)  { f.polylines = append(f.polylines, pts) }

func TestRetainedRepaintsLastFrame(t *testing.T) {
	out := &fakeDrawer{}
	s := newRetained(600, 600, color.RGBA{A: 255}, out)

	s.ClearRect(0, 0, 600, 600)
	s.BeginPath()
	s.LineTo(1, 1)
	s.LineTo(2, 2)
	s.Stroke()

	if out.fills != 1 || len(out.polylines) != 1 {
		t.Fatalf("fills=%d polylines=%d", out.fills, len(out.polylines))
	}

	s.repaint()
	if out.fills != 2 || len(out.polylines) != 2 {
		t.Errorf("repaint: fills=%d polylines=%d", out.fills, len(out.polylines))
	}
	if out.polylines[1][1] != (render.Vec2{X: 2, Y: 2}) {
		t.Errorf("repaint drew %v", out.polylines[1])
	}

	s.ClearRect(0, 0, 10, 10)
	if out.rects != 1 || len(s.Polylines) != 1 {
		t.Errorf("partial clear should not drop lines: rects=%d lines=%d", out.rects, len(s.Polylines))
	}

	s.ClearRect(-1, -1, 700, 700)
	s.repaint()
	if len(out.polylines) != 2 {
		t.Errorf("full clear should drop lines, got %d", len(out.polylines))
	}
}

func TestRetainedSkipsSinglePoint(t *testing.T) {
	out := &fakeDrawer{}
	s := newRetained(600, 600, color.RGBA{A: 255}, out)
	s.BeginPath()
	s.LineTo(5, 5)
	s.Stroke()
	if len(out.polylines) != 0 {
		t.Error("single point path should not draw")
	}
}

func TestRetainedDrivesAnimation(t *testing.T) {
	out := &fakeDrawer{}
	cfg := config.DefaultConfig()
	s := newRetained(cfg.Size, cfg.Size, cfg.BackgroundColor(), out)
	d, err := anim.New(cfg, s, logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if err := d.RunFrames(3); err != nil {
		t.Fatal(err)
	}
	if out.fills != 3 || len(out.polylines) != 3 {
		t.Errorf("fills=%d polylines=%d", out.fills, len(out.polylines))
	}
	if n := len(out.polylines[2]); n != 31 {
		t.Errorf("third frame should stroke 31 points, got %d", n)
	}
}
