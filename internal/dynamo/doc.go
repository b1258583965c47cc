// Package dynamo provides the core primitives shared by the Lorenz animation.
//
// The package defines the value types and interfaces the other packages
// exchange:
//
//   - [Point]: one trajectory state (x, y, z)
//   - [Params]: Lorenz coefficients sigma, rho and beta
//   - [System]: interface for ODE systems (dP/dt = f(P))
//   - [Integrator]: fixed-step numerical integrator interface
//
// # Example
//
//	sys := physics.NewLorenz(dynamo.DefaultParams())
//	integ := integrators.NewEuler()
//	next := integ.Step(sys, dynamo.Seed, 0.01)
//
// # Errors
//
// Non-finite geometry is reported with [ErrDegenerateGeometry], usually
// wrapped in a [FrameError]. It is an observation, not a failure: callers
// decide whether to halt on it.
package dynamo
