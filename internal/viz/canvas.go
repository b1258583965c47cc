package viz

import (
	"math"
	"strings"

	"github.com/san-kum/lorenz/internal/render"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille dot grid that also serves as a render.Surface. Logical
// surface coordinates are mapped onto the (Width*2) x (Height*4) dot grid.
type Canvas struct {
	render.PathRecorder
	Width, Height int
	Grid          [][]rune

	logicalW, logicalH float64
}

func NewCanvas(w, h int, logicalW, logicalH float64) *Canvas {
	c := &Canvas{
		Width:    w,
		Height:   h,
		Grid:     make([][]rune, h),
		logicalW: logicalW,
		logicalH: logicalH,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

func (c *Canvas) Size() (float64, float64) { return c.logicalW, c.logicalH }

// toDots maps a logical coordinate onto the dot grid.
func (c *Canvas) toDots(v render.Vec2) (int, int) {
	sx := float64(c.Width*2) / c.logicalW
	sy := float64(c.Height*4) / c.logicalH
	return int(math.Floor(v.X * sx)), int(math.Floor(v.Y * sy))
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	if render.CoversSurface(x, y, w, h, c.logicalW, c.logicalH) {
		c.Clear()
		return
	}
	x0, y0 := c.toDots(render.Vec2{X: x, Y: y})
	x1, y1 := c.toDots(render.Vec2{X: x + w, Y: y + h})
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.Unset(px, py)
		}
	}
}

func (c *Canvas) Stroke() {
	c.Segments(func(a, b render.Vec2) {
		a, b, ok := render.Clip(a, b, c.logicalW, c.logicalH)
		if !ok {
			return
		}
		x0, y0 := c.toDots(a)
		x1, y1 := c.toDots(b)
		c.DrawLine(x0, y0, x1, y1)
	})
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	// Early bounds check for negative coordinates
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
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

// Lit counts the dots currently set.
func (c *Canvas) Lit() int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			for bits := r - blank; bits != 0; bits &= bits - 1 {
				n++
			}
		}
	}
	return n
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		b.WriteString(string(row))
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
