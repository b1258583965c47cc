package analysis

import (
	"strings"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// Point2 is a point on a two-axis projection of the trajectory.
type Point2 struct{ X, Y float64 }

// PhasePortrait projects points onto two axes (0=x, 1=y, 2=z).
func PhasePortrait(points []dynamo.Point, xAxis, yAxis int) []Point2 {
	out := make([]Point2, len(points))
	for i, p := range points {
		out[i] = Point2{p.Axis(xAxis), p.Axis(yAxis)}
	}
	return out
}

// PoincareSection integrates from x0 and records the (recordX, recordY)
// coordinates wherever the cross axis passes threshold going upward.
func PoincareSection(
	sys dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.Point,
	crossAxis int,
	threshold float64,
	recordX, recordY int,
	dt float64,
	steps int,
) ([]Point2, error) {
	section := make([]Point2, 0)
	x := x0
	prev := x

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, dt)
		if !x.IsValid() {
			return section, dynamo.ErrNonFinite
		}

		pv, cv := prev.Axis(crossAxis), x.Axis(crossAxis)
		if pv < threshold && cv >= threshold {
			frac := (threshold - pv) / (cv - pv)
			hit := prev.Add(x.Sub(prev).Scale(frac))
			section = append(section, Point2{hit.Axis(recordX), hit.Axis(recordY)})
		}
		prev = x
	}

	return section, nil
}

// PhasePortraitToASCII plots points into a width x height character grid
// with 10% padding and axes where they cross the visible area.
func PhasePortraitToASCII(points []Point2, width, height int) string {
	if len(points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	grid := blankGrid(width, height)
	for _, p := range points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			grid[row][col] = '•'
		}
	}

	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if col >= 0 && col < width && grid[row][col] == ' ' {
				grid[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && grid[row][col] == ' ' {
				grid[row][col] = '─'
			}
		}
	}

	return joinGrid(grid)
}

func blankGrid(width, height int) [][]rune {
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}
	return grid
}

func joinGrid(grid [][]rune) string {
	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
