package gui

import (
	"errors"
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/lorenz/internal/anim"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/logger"
	"github.com/san-kum/lorenz/internal/render"
)

var (
	ColText  = rl.NewColor(140, 140, 140, 255)
	ColError = rl.NewColor(220, 80, 80, 255)
)

type raylibDrawer struct{}

func (raylibDrawer) fill(c color.RGBA) { rl.ClearBackground(c) }

func (raylibDrawer) fillRect(x, y, w, h float64, c color.RGBA) {
	rl.DrawRectangleV(rl.NewVector2(float32(x), float32(y)), rl.NewVector2(float32(w), float32(h)), c)
}

func (raylibDrawer) polyline(pts []render.Vec2, c color.RGBA) {
	strip := make([]rl.Vector2, len(pts))
	for i, p := range pts {
		strip[i] = rl.NewVector2(float32(p.X), float32(p.Y))
	}
	rl.DrawLineStrip(strip, c)
}

// App hosts the animation in a raylib window.
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	driver  *anim.Driver
	surface *retained
	err     error
}

func NewApp(cfg *config.Config, log *logger.Logger) (*App, error) {
	surface := newRetained(cfg.Size, cfg.Size, cfg.BackgroundColor(), raylibDrawer{})
	d, err := anim.New(cfg, surface, log)
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, log: log, driver: d, surface: surface}, nil
}

// RunRaylib opens a window sized to the drawing surface and animates until
// the window is closed. A halted animation stays on screen with its error.
func RunRaylib(cfg *config.Config, log *logger.Logger) error {
	a, err := NewApp(cfg, log)
	if err != nil {
		return err
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Size), int32(cfg.Size), "lorenz")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	log.Info("raylib window %.0fx%.0f at %.0f fps", cfg.Size, cfg.Size, cfg.FPS)
	a.RunLoop()
	log.Info("window closed after %d frames", a.driver.Frames())
	return a.err
}

// RunLoop draws one frame per tick until the window is closed.
func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Draw()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()

	if a.err == nil {
		if err := a.driver.Frame(); err != nil {
			a.err = err
			a.log.Error("animation halted: %v", err)
		}
	} else {
		a.surface.repaint()
	}

	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawHUD() {
	s := a.driver.LastStats()
	rl.DrawText(s.String(), 10, 10, 10, ColText)

	if a.err == nil {
		return
	}
	msg := a.err.Error()
	if errors.Is(a.err, dynamo.ErrDegenerateGeometry) {
		msg = fmt.Sprintf("degenerate geometry at frame %d", s.Frame)
	}
	rl.DrawText(msg, 10, 40, 10, ColError)
	rl.DrawText("HALTED", int32(a.cfg.Size)-70, 10, 10, ColText)
}
