package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/metrics"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/san-kum/lorenz/internal/sim"
)

// Experiment is an untrimmed simulation built from a Config.
type Experiment struct {
	cfg       *config.Config
	sys       *physics.Lorenz
	integ     dynamo.Integrator
	simulator *sim.Simulator
}

func New(cfg *config.Config) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	integ, err := integrators.Get(cfg.Integrator)
	if err != nil {
		return nil, err
	}
	sys := physics.NewLorenz(cfg.Params)

	e := &Experiment{
		cfg:       cfg,
		sys:       sys,
		integ:     integ,
		simulator: sim.New(sys, integ),
	}
	for _, m := range DefaultMetrics(cfg.Params) {
		e.simulator.AddMetric(m)
	}
	return e, nil
}

// Run integrates steps points from the configured seed.
func (e *Experiment) Run(ctx context.Context, steps int) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, e.cfg.Seed, sim.Config{
		Dt:            e.cfg.Dt,
		Steps:         steps,
		ValidateState: true,
	})
}

// Simulator returns the underlying simulator for adding observers.
func (e *Experiment) Simulator() *sim.Simulator     { return e.simulator }
func (e *Experiment) System() *physics.Lorenz       { return e.sys }
func (e *Experiment) Integrator() dynamo.Integrator { return e.integ }

func DefaultMetrics(p dynamo.Params) []sim.Metric {
	return []sim.Metric{
		metrics.NewEnergy(p),
		metrics.NewStability(1000),
		metrics.NewWingSwitches(),
	}
}
