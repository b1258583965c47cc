package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/lorenz/internal/render"
)

// SVG is a render.Surface that keeps every polyline stroked since the last
// full clear and writes them as an SVG document. Partial clears cannot be
// expressed without compositing and leave the document unchanged.
type SVG struct {
	render.Recorder
	Background color.RGBA
}

func NewSVG(w, h float64, bg color.RGBA) *SVG {
	return &SVG{Recorder: *render.NewRecorder(w, h), Background: bg}
}

func (s *SVG) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.W, s.H, s.W, s.H, hex(s.Background)))

	for i, line := range s.Polylines {
		if len(line) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" d="M`, hex(s.Colors[i])))
		for j, p := range line {
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
