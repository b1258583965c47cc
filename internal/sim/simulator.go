package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// Simulator integrates an untrimmed trajectory for analysis. The animation
// keeps a bounded trail; this keeps every point.
type Simulator struct {
	sys        dynamo.System
	integrator dynamo.Integrator
	metrics    []Metric
	observers  []Observer
}

func New(sys dynamo.System, integrator dynamo.Integrator) *Simulator {
	return &Simulator{
		sys:        sys,
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, x0 dynamo.Point, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Points:  make([]dynamo.Point, 0, cfg.Steps+1),
		Metrics: make(map[string]float64),
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0
	result.Points = append(result.Points, x)
	s.observe(x, 0)

	for i := 1; i <= cfg.Steps; i++ {
		if i%1024 == 0 {
			select {
			case <-ctx.Done():
				s.collect(result)
				return result, ctx.Err()
			default:
			}
		}

		x = s.integrator.Step(s.sys, x, cfg.Dt)
		if cfg.ValidateState && !x.IsValid() {
			s.collect(result)
			return result, fmt.Errorf("step %d: %w", i, dynamo.ErrNonFinite)
		}

		result.Points = append(result.Points, x)
		result.StepsTaken++
		s.observe(x, i)
	}

	s.collect(result)
	return result, nil
}

func (s *Simulator) observe(p dynamo.Point, step int) {
	for _, m := range s.metrics {
		m.Observe(p)
	}
	for _, o := range s.observers {
		o.OnStep(p, step)
	}
}

func (s *Simulator) collect(r *Result) {
	for _, m := range s.metrics {
		r.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", dynamo.ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", dynamo.ErrInvalidConfig, cfg.Steps)
	}
	return nil
}
