package analysis

import (
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent using the
// two-trajectory renormalization method. A positive value indicates chaos.
//
// Algorithm:
// 1. Run two trajectories separated by d0
// 2. After each step measure the separation d and accumulate ln(d/d0)
// 3. Pull the perturbed trajectory back to distance d0 along the same direction
// 4. λ ≈ sum / (steps * dt)
func LyapunovExponent(
	sys dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.Point,
	dt float64,
	steps int,
	d0 float64,
) (float64, error) {
	return lyapunovAlong(sys, integ, x0, dynamo.Point{X: 1}, dt, steps, d0)
}

// LyapunovSpectrum runs the estimate with the initial perturbation along
// each axis in turn. For a chaotic flow all three converge on the largest
// exponent, so their spread indicates the estimate's uncertainty.
func LyapunovSpectrum(
	sys dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.Point,
	dt float64,
	steps int,
	d0 float64,
) ([3]float64, error) {
	var out [3]float64
	dirs := [3]dynamo.Point{{X: 1}, {Y: 1}, {Z: 1}}
	for i, dir := range dirs {
		lam, err := lyapunovAlong(sys, integ, x0, dir, dt, steps, d0)
		if err != nil {
			return out, err
		}
		out[i] = lam
	}
	return out, nil
}

func lyapunovAlong(
	sys dynamo.System,
	integ dynamo.Integrator,
	x0, dir dynamo.Point,
	dt float64,
	steps int,
	d0 float64,
) (float64, error) {
	if steps <= 0 || dt <= 0 || d0 <= 0 {
		return 0, dynamo.ErrInvalidConfig
	}

	offset := dir.Scale(d0 / dir.Norm())
	x := x0
	xp := x0.Add(offset)
	sumLog := 0.0

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, dt)
		xp = integ.Step(sys, xp, dt)
		if !x.IsValid() || !xp.IsValid() {
			return 0, dynamo.ErrNonFinite
		}

		sep := xp.Sub(x).Norm()
		if sep == 0 {
			// trajectories merged, restart the perturbation
			xp = x.Add(offset)
			continue
		}
		sumLog += math.Log(sep / d0)
		xp = x.Add(xp.Sub(x).Scale(d0 / sep))
	}

	return sumLog / (float64(steps) * dt), nil
}
