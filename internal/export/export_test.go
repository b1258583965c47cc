package export

import (
	"bytes"
	"image/color"
	"image/gif"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/lorenz/internal/anim"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func strokeLine(s interface {
	BeginPath()
	LineTo(x, y float64)
	SetStrokeColor(c color.RGBA)
	Stroke()
}, pts ...[2]float64) {
	s.BeginPath()
	for _, p := range pts {
		s.LineTo(p[0], p[1])
	}
	s.SetStrokeColor(white)
	s.Stroke()
}

func TestSVGKeepsStrokesUntilFullClear(t *testing.T) {
	s := NewSVG(600, 600, black)
	strokeLine(s, [2]float64{0, 0}, [2]float64{10, 10})
	strokeLine(s, [2]float64{5, 5}, [2]float64{20, 30}, [2]float64{40, 50})

	out := s.String()
	if n := strings.Count(out, "<path"); n != 2 {
		t.Fatalf("expected 2 paths, got %d", n)
	}
	if !strings.Contains(out, "M5.0,5.0 L20.0,30.0 L40.0,50.0") {
		t.Errorf("missing path data:\n%s", out)
	}
	if !strings.Contains(out, `stroke="#ffffff"`) || !strings.Contains(out, `fill="#000000"`) {
		t.Errorf("missing colors:\n%s", out)
	}

	s.ClearRect(10, 10, 5, 5)
	if n := strings.Count(s.String(), "<path"); n != 2 {
		t.Errorf("partial clear removed paths: %d left", n)
	}

	s.ClearRect(0, 0, 600, 600)
	if n := strings.Count(s.String(), "<path"); n != 0 {
		t.Errorf("full clear left %d paths", n)
	}
}

func TestSVGSkipsNonFinitePoints(t *testing.T) {
	s := NewSVG(600, 600, black)
	strokeLine(s, [2]float64{1, 1}, [2]float64{math.NaN(), 2}, [2]float64{3, 3})
	if strings.Contains(s.String(), "NaN") {
		t.Error("NaN leaked into svg output")
	}

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
}

func TestRasterStroke(t *testing.T) {
	r := NewRaster(100, 100, 600, 600, black)
	if got := r.Image().RGBAAt(50, 50); got != black {
		t.Fatalf("expected background after creation, got %v", got)
	}

	strokeLine(r, [2]float64{0, 300}, [2]float64{599, 300})
	if got := r.Image().RGBAAt(50, 50); got != white {
		t.Errorf("expected stroke pixel at (50,50), got %v", got)
	}
	if got := r.Image().RGBAAt(50, 10); got != black {
		t.Errorf("unexpected pixel at (50,10): %v", got)
	}

	r.ClearRect(0, 0, 600, 600)
	if got := r.Image().RGBAAt(50, 50); got != black {
		t.Errorf("clear did not reset pixel: %v", got)
	}
}

func TestRasterClipsOffSurfaceSegments(t *testing.T) {
	r := NewRaster(60, 60, 600, 600, black)
	strokeLine(r, [2]float64{-1e12, 300}, [2]float64{1e12, 300})
	if got := r.Image().RGBAAt(30, 30); got != white {
		t.Errorf("clipped segment not drawn: %v", got)
	}

	var buf bytes.Buffer
	if err := r.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 60 {
		t.Errorf("png width = %d", img.Bounds().Dx())
	}
}

func TestGIFRecorder(t *testing.T) {
	r := NewRaster(40, 40, 600, 600, black)
	g := NewGIFRecorder(r, white, 60, 2)

	for i := 1; i <= 5; i++ {
		strokeLine(r, [2]float64{0, float64(i * 100)}, [2]float64{599, float64(i * 100)})
		g.OnFrame(anim.FrameStats{Frame: i})
	}
	if g.Len() != 3 {
		t.Fatalf("expected frames 1, 3 and 5 captured, got %d", g.Len())
	}

	var buf bytes.Buffer
	if err := g.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Image) != 3 {
		t.Errorf("decoded %d frames", len(decoded.Image))
	}
	if decoded.Delay[0] != 3 {
		t.Errorf("delay = %d, want 3", decoded.Delay[0])
	}
}
