package anim

import (
	"fmt"

	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/logger"
	"github.com/san-kum/lorenz/internal/path"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/san-kum/lorenz/internal/render"
	"github.com/san-kum/lorenz/internal/scale"
)

// FrameStats describes one completed frame.
type FrameStats struct {
	Frame      int
	PathLen    int
	Dropped    int
	Angle      float64
	Bounds     scale.Bounds
	Degenerate bool
}

type Observer interface {
	OnFrame(stats FrameStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(FrameStats)

func (f ObserverFunc) OnFrame(s FrameStats) { f(s) }

type Driver struct {
	sys       dynamo.System
	integ     dynamo.Integrator
	path      *path.Path
	scaler    *scale.Scaler
	renderer  *render.Renderer
	surface   render.Surface
	log       *logger.Logger
	observers []Observer

	dt        float64
	steps     int
	maxPoints int
	halt      bool

	frame      int
	degenerate bool
	last       FrameStats
}

// New builds a driver from cfg drawing onto s.
func New(cfg *config.Config, s render.Surface, log *logger.Logger) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	integ, err := integrators.Get(cfg.Integrator)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Discard()
	}
	proj := render.NewProjector(cfg.AngleStep, cfg.Size/2)
	return &Driver{
		sys:       physics.NewLorenz(cfg.Params),
		integ:     integ,
		path:      path.New(cfg.Seed),
		scaler:    scale.New(cfg.Mode(), cfg.Size),
		renderer:  render.NewRenderer(proj, cfg.StrokeColor()),
		surface:   s,
		log:       log,
		dt:        cfg.Dt,
		steps:     cfg.StepsPerFrame,
		maxPoints: cfg.MaxPoints,
		halt:      cfg.HaltOnDegenerate,
		observers: make([]Observer, 0),
	}, nil
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

func (d *Driver) Path() *path.Path      { return d.path }
func (d *Driver) Angle() float64        { return d.renderer.Projector.Angle }
func (d *Driver) Frames() int           { return d.frame }
func (d *Driver) LastStats() FrameStats { return d.last }

// Frame runs one animation cycle. Degenerate geometry is logged and
// reported to observers; it only produces an error when the driver was
// configured to halt on it.
func (d *Driver) Frame() error {
	d.frame++

	w, h := d.surface.Size()
	d.surface.ClearRect(0, 0, w, h)

	if err := d.path.Extend(d.sys, d.integ, d.dt, d.steps); err != nil {
		return &dynamo.FrameError{Frame: d.frame, Stage: "extend", Wrapped: err}
	}

	scaled, bounds, err := d.scaler.Scale(d.path.Points())
	if err != nil {
		return &dynamo.FrameError{Frame: d.frame, Stage: "scale", Wrapped: err}
	}
	degenerate := bounds.Degenerate(d.scaler.Mode)

	angle := d.renderer.Draw(d.surface, scaled)
	dropped := d.path.Trim(d.maxPoints)

	d.last = FrameStats{
		Frame:      d.frame,
		PathLen:    d.path.Len(),
		Dropped:    dropped,
		Angle:      angle,
		Bounds:     bounds,
		Degenerate: degenerate,
	}
	for _, o := range d.observers {
		o.OnFrame(d.last)
	}

	if degenerate != d.degenerate {
		if degenerate {
			d.log.Warn("frame %d: degenerate geometry, bounds min=%+v max=%+v", d.frame, bounds.Min, bounds.Max)
		} else {
			d.log.Info("frame %d: geometry recovered", d.frame)
		}
		d.degenerate = degenerate
	}
	if degenerate && d.halt {
		return &dynamo.FrameError{Frame: d.frame, Stage: "scale", Wrapped: dynamo.ErrDegenerateGeometry}
	}
	return nil
}

// RunFrames runs n frames back to back without any delay.
func (d *Driver) RunFrames(n int) error {
	for i := 0; i < n; i++ {
		if err := d.Frame(); err != nil {
			return err
		}
	}
	return nil
}

func (s FrameStats) String() string {
	return fmt.Sprintf("frame=%d points=%d angle=%.2f", s.Frame, s.PathLen, s.Angle)
}
