package config

import "sort"

// Presets adjust a default config. Every preset starts from DefaultConfig.
var Presets = map[string]func(*Config){
	"reference": func(*Config) {},
	"corrected": func(c *Config) {
		c.ScaleMode = "independent"
	},
	"smooth": func(c *Config) {
		c.Integrator = "rk4"
	},
	"inplace": func(c *Config) {
		c.Integrator = "sequential"
	},
	"long-trail": func(c *Config) {
		c.MaxPoints = 3000
		c.StepsPerFrame = 15
	},
}

func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
