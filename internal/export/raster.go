package export

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/san-kum/lorenz/internal/render"
)

// Raster is a render.Surface backed by an RGBA image. Logical coordinates
// are scaled onto the pixel grid.
type Raster struct {
	render.PathRecorder
	Background color.RGBA

	img                *image.RGBA
	logicalW, logicalH float64
}

// NewRaster creates a px x py image for a logical surface of w x h.
func NewRaster(px, py int, w, h float64, bg color.RGBA) *Raster {
	r := &Raster{
		Background: bg,
		img:        image.NewRGBA(image.Rect(0, 0, px, py)),
		logicalW:   w,
		logicalH:   h,
	}
	r.ClearRect(0, 0, w, h)
	return r
}

func (r *Raster) Size() (float64, float64) { return r.logicalW, r.logicalH }
func (r *Raster) Image() *image.RGBA       { return r.img }

func (r *Raster) toPixels(v render.Vec2) (int, int) {
	b := r.img.Bounds()
	return int(math.Floor(v.X * float64(b.Dx()) / r.logicalW)), int(math.Floor(v.Y * float64(b.Dy()) / r.logicalH))
}

func (r *Raster) ClearRect(x, y, w, h float64) {
	x0, y0 := r.toPixels(render.Vec2{X: x, Y: y})
	x1, y1 := r.toPixels(render.Vec2{X: x + w, Y: y + h})
	rect := image.Rect(x0, y0, x1, y1).Intersect(r.img.Bounds())
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			r.img.SetRGBA(px, py, r.Background)
		}
	}
}

func (r *Raster) Stroke() {
	c := r.StrokeColor()
	r.Segments(func(a, b render.Vec2) {
		a, b, ok := render.Clip(a, b, r.logicalW, r.logicalH)
		if !ok {
			return
		}
		x0, y0 := r.toPixels(a)
		x1, y1 := r.toPixels(b)
		r.line(x0, y0, x1, y1, c)
	})
}

// line draws a line using Bresenham's algorithm
func (r *Raster) line(x0, y0, x1, y1 int, c color.RGBA) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	bounds := r.img.Bounds()

	for {
		if image.Pt(x0, y0).In(bounds) {
			r.img.SetRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Raster) WritePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
