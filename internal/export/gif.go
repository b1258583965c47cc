package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"

	"github.com/san-kum/lorenz/internal/anim"
)

// GIFRecorder captures a Raster after frames and encodes them as an
// animated GIF. It is an anim.Observer.
type GIFRecorder struct {
	raster  *Raster
	palette color.Palette
	every   int
	delay   int
	frames  []*image.Paletted
}

// NewGIFRecorder captures every nth frame of r, played back at fps.
func NewGIFRecorder(r *Raster, stroke color.RGBA, fps float64, every int) *GIFRecorder {
	if every < 1 {
		every = 1
	}
	// GIF delays are in 100ths of a second
	delay := int(math.Round(100 * float64(every) / fps))
	if delay < 1 {
		delay = 1
	}
	return &GIFRecorder{
		raster:  r,
		palette: color.Palette{r.Background, stroke},
		every:   every,
		delay:   delay,
	}
}

func (g *GIFRecorder) OnFrame(s anim.FrameStats) {
	if (s.Frame-1)%g.every != 0 {
		return
	}
	g.Capture()
}

func (g *GIFRecorder) Capture() {
	src := g.raster.Image()
	img := image.NewPaletted(src.Bounds(), g.palette)
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	g.frames = append(g.frames, img)
}

func (g *GIFRecorder) Len() int { return len(g.frames) }

func (g *GIFRecorder) Encode(w io.Writer) error {
	out := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, g.delay)
	}
	return gif.EncodeAll(w, &out)
}
