package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/lorenz/internal/anim"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/logger"
	"github.com/san-kum/lorenz/internal/render"
)

type ebitenDrawer struct {
	dst *ebiten.Image
}

func (e *ebitenDrawer) fill(c color.RGBA) { e.dst.Fill(c) }

func (e *ebitenDrawer) fillRect(x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(e.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (e *ebitenDrawer) polyline(pts []render.Vec2, c color.RGBA) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(e.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, true)
	}
}

// Game hosts the animation as an ebiten game. Ticks advance the animation
// and Draw paints it, so a tick without a draw is caught up on the next one.
type Game struct {
	cfg     *config.Config
	log     *logger.Logger
	driver  *anim.Driver
	out     *ebitenDrawer
	surface *retained
	pending int
	err     error
}

func NewGame(cfg *config.Config, log *logger.Logger) (*Game, error) {
	g := &Game{cfg: cfg, log: log, out: &ebitenDrawer{}}
	g.surface = newRetained(cfg.Size, cfg.Size, cfg.BackgroundColor(), g.out)
	d, err := anim.New(cfg, g.surface, log)
	if err != nil {
		return nil, err
	}
	g.driver = d
	return g, nil
}

// RunEbiten opens an ebiten window and animates until it is closed.
func RunEbiten(cfg *config.Config, log *logger.Logger) error {
	g, err := NewGame(cfg, log)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(cfg.Size), int(cfg.Size))
	ebiten.SetWindowTitle("lorenz")
	ebiten.SetTPS(int(cfg.FPS))

	log.Info("ebiten window %.0fx%.0f at %.0f tps", cfg.Size, cfg.Size, cfg.FPS)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	log.Info("window closed after %d frames", g.driver.Frames())
	return g.err
}

// Update queues one frame per tick.
func (g *Game) Update() error {
	if g.err == nil {
		g.pending++
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.out.dst = screen

	if g.pending == 0 || g.err != nil {
		g.surface.repaint()
	}
	for ; g.pending > 0 && g.err == nil; g.pending-- {
		if err := g.driver.Frame(); err != nil {
			g.err = err
			g.log.Error("animation halted: %v", err)
		}
	}
	g.pending = 0

	ebitenutil.DebugPrint(screen, g.driver.LastStats().String())
	if g.err != nil {
		ebitenutil.DebugPrintAt(screen, g.err.Error(), 0, 16)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.Size), int(g.cfg.Size)
}
