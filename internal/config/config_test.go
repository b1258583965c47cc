package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/scale"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt != 0.01 {
		t.Errorf("expected dt 0.01, got %f", cfg.Dt)
	}
	if cfg.Params != dynamo.DefaultParams() {
		t.Errorf("unexpected params %+v", cfg.Params)
	}
	if cfg.Seed != (dynamo.Point{X: 1, Y: 1, Z: 1}) {
		t.Errorf("unexpected seed %+v", cfg.Seed)
	}
	if cfg.StepsPerFrame != 10 || cfg.MaxPoints != 1000 || cfg.Size != 600 {
		t.Errorf("unexpected frame constants %d %d %f", cfg.StepsPerFrame, cfg.MaxPoints, cfg.Size)
	}
	if cfg.Mode() != scale.Reference {
		t.Errorf("expected reference scale mode, got %v", cfg.Mode())
	}
	if got := cfg.FrameInterval(); got != time.Second/60 {
		t.Errorf("expected 1/60 s, got %v", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative dt", func(c *Config) { c.Dt = -0.1 }},
		{"zero steps", func(c *Config) { c.StepsPerFrame = 0 }},
		{"zero max points", func(c *Config) { c.MaxPoints = 0 }},
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"unknown integrator", func(c *Config) { c.Integrator = "leapfrog" }},
		{"unknown scale mode", func(c *Config) { c.ScaleMode = "log" }},
		{"bad stroke", func(c *Config) { c.Stroke = "white" }},
		{"bad background", func(c *Config) { c.Background = "#12" }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.modify(cfg)
		err := cfg.Validate()
		if !errors.Is(err, dynamo.ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tt.name, err)
		}
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lorenz.yaml")
	body := "integrator: rk4\nscale_mode: independent\nparams:\n  rho: 20\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Integrator != "rk4" || cfg.Mode() != scale.Independent {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Params.Rho != 20 {
		t.Errorf("expected rho 20, got %f", cfg.Params.Rho)
	}
	if cfg.Dt != DefaultDt || cfg.MaxPoints != DefaultMaxPoints {
		t.Errorf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestLoadOverKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lorenz.yaml")
	if err := os.WriteFile(path, []byte("fps: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("smooth")
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Integrator != "rk4" || cfg.FPS != 30 {
		t.Errorf("expected rk4 at 30 fps, got %s at %f", cfg.Integrator, cfg.FPS)
	}
	if base.FPS != DefaultFPS {
		t.Error("base config was modified")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("dt: -1\n"), 0644)

	if _, err := Load(path); !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lorenz.yaml")
	cfg := DefaultConfig()
	cfg.Seed = dynamo.Point{X: 0.5, Y: -1, Z: 2}
	cfg.HaltOnDegenerate = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded config differs:\n%+v\n%+v", loaded, cfg)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("corrected")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Mode() != scale.Independent {
		t.Errorf("expected independent scaling, got %v", cfg.Mode())
	}
	if GetPreset("reference").Mode() != scale.Reference {
		t.Error("reference preset should keep reference scaling")
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
