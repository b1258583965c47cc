package viz

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lorenz/internal/anim"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/logger"
)

const (
	// 2x4 braille dots per cell; twice as many columns as rows gives a
	// square dot grid.
	width        = 80
	height       = 40
	sparkSamples = 120
	sparkWidth   = 30
	chartHeight  = 4
)

type TickMsg time.Time

// Model runs the animation inside a Bubble Tea program. Every tick runs one
// frame and only then schedules the next tick, so frames never stack.
type Model struct {
	driver   *anim.Driver
	canvas   *Canvas
	interval time.Duration
	stroke   color.RGBA
	bg       color.RGBA
	err      error
	quitting bool
}

// NewModel builds the driver and a braille canvas sized to the logical
// surface in cfg.
func NewModel(cfg *config.Config, log *logger.Logger) (Model, error) {
	canvas := NewCanvas(width, height, cfg.Size, cfg.Size)
	drv, err := anim.New(cfg, canvas, log)
	if err != nil {
		return Model{}, err
	}
	return Model{
		driver:   drv,
		canvas:   canvas,
		interval: cfg.FrameInterval(),
		stroke:   cfg.StrokeColor(),
		bg:       cfg.BackgroundColor(),
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return TickMsg(time.Now()) }
}

// Update steps the animation on ticks and quits on q or ctrl+c.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	case TickMsg:
		if err := m.driver.Frame(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) Err() error           { return m.err }
func (m Model) Driver() *anim.Driver { return m.driver }

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	stats := m.driver.LastStats()
	canvasView := canvasStyle(m.stroke, m.bg).Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("LORENZ ATTRACTOR") + "\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", stats.Frame)) + "\n")
	s.WriteString(labelStyle.Render("Points") + valueStyle.Render(fmt.Sprintf("%d", stats.PathLen)) + "\n")
	s.WriteString(labelStyle.Render("Angle") + valueStyle.Render(fmt.Sprintf("%.2f rad", stats.Angle)) + "\n")
	b := stats.Bounds
	s.WriteString(labelStyle.Render("X") + valueStyle.Render(fmt.Sprintf("%6.2f .. %6.2f", b.Min.X, b.Max.X)) + "\n")
	s.WriteString(labelStyle.Render("Y") + valueStyle.Render(fmt.Sprintf("%6.2f .. %6.2f", b.Min.Y, b.Max.Y)) + "\n")
	s.WriteString(labelStyle.Render("Z") + valueStyle.Render(fmt.Sprintf("%6.2f .. %6.2f", b.Min.Z, b.Max.Z)) + "\n")
	if stats.Degenerate {
		s.WriteString(warnStyle.Render("degenerate geometry") + "\n")
	}

	xs := m.tail(0)
	if len(xs) > 1 {
		chart := asciigraph.Plot(xs, asciigraph.Height(chartHeight), asciigraph.Width(sparkWidth), asciigraph.Caption("x(t)"))
		s.WriteString(graphStyle.Render(chart) + "\n")
		s.WriteString(SparklineChart(m.tail(2), sparkWidth) + "\n")
	}
	s.WriteString(helpStyle.Render("q: quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// tail returns the newest samples of one axis of the raw path.
func (m Model) tail(axis int) []float64 {
	values := m.driver.Path().Axis(axis)
	if len(values) > sparkSamples {
		values = values[len(values)-sparkSamples:]
	}
	return values
}

// Run shows the animation in the terminal until the user quits.
func Run(cfg *config.Config, log *logger.Logger) error {
	m, err := NewModel(cfg, log)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
