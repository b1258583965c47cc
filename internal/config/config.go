package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/render"
	"github.com/san-kum/lorenz/internal/scale"
)

const (
	DefaultDt            = 0.01
	DefaultStepsPerFrame = 10
	DefaultMaxPoints     = 1000
	DefaultSize          = 600.0
	DefaultFPS           = 60.0
	DefaultAngleStep     = 0.01
	DefaultIntegrator    = "euler"
	DefaultScaleMode     = "reference"
	DefaultStroke        = "#ffffff"
	DefaultBackground    = "#000000"
)

type Config struct {
	Integrator       string        `yaml:"integrator"`
	Dt               float64       `yaml:"dt"`
	Params           dynamo.Params `yaml:"params"`
	Seed             dynamo.Point  `yaml:"seed"`
	StepsPerFrame    int           `yaml:"steps_per_frame"`
	MaxPoints        int           `yaml:"max_points"`
	Size             float64       `yaml:"size"`
	FPS              float64       `yaml:"fps"`
	AngleStep        float64       `yaml:"angle_step"`
	ScaleMode        string        `yaml:"scale_mode"`
	Stroke           string        `yaml:"stroke"`
	Background       string        `yaml:"background"`
	HaltOnDegenerate bool          `yaml:"halt_on_degenerate"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrator:    DefaultIntegrator,
		Dt:            DefaultDt,
		Params:        dynamo.DefaultParams(),
		Seed:          dynamo.Seed,
		StepsPerFrame: DefaultStepsPerFrame,
		MaxPoints:     DefaultMaxPoints,
		Size:          DefaultSize,
		FPS:           DefaultFPS,
		AngleStep:     DefaultAngleStep,
		ScaleMode:     DefaultScaleMode,
		Stroke:        DefaultStroke,
		Background:    DefaultBackground,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base. Fields missing from the file keep
// the base values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", dynamo.ErrInvalidConfig, c.Dt)
	}
	if c.StepsPerFrame < 1 {
		return fmt.Errorf("%w: steps_per_frame must be at least 1, got %d", dynamo.ErrInvalidConfig, c.StepsPerFrame)
	}
	if c.MaxPoints < 1 {
		return fmt.Errorf("%w: max_points must be at least 1, got %d", dynamo.ErrInvalidConfig, c.MaxPoints)
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %f", dynamo.ErrInvalidConfig, c.Size)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %f", dynamo.ErrInvalidConfig, c.FPS)
	}
	if _, err := integrators.Get(c.Integrator); err != nil {
		return fmt.Errorf("%w: %v", dynamo.ErrInvalidConfig, err)
	}
	if _, err := scale.ParseMode(c.ScaleMode); err != nil {
		return fmt.Errorf("%w: %v", dynamo.ErrInvalidConfig, err)
	}
	if _, err := render.ParseColor(c.Stroke); err != nil {
		return fmt.Errorf("%w: stroke: %v", dynamo.ErrInvalidConfig, err)
	}
	if _, err := render.ParseColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", dynamo.ErrInvalidConfig, err)
	}
	return nil
}

// FrameInterval is the delay between the end of one frame and the start of
// the next.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FPS)
}

func (c *Config) Mode() scale.Mode {
	m, _ := scale.ParseMode(c.ScaleMode)
	return m
}

func (c *Config) StrokeColor() color.RGBA     { return parseOr(c.Stroke, DefaultStroke) }
func (c *Config) BackgroundColor() color.RGBA { return parseOr(c.Background, DefaultBackground) }

func parseOr(hex, fallback string) color.RGBA {
	if c, err := render.ParseColor(hex); err == nil {
		return c
	}
	return render.MustParseColor(fallback)
}
