// Package physics provides the Lorenz system used as the trajectory source.
//
// [Lorenz] implements [dynamo.System]:
//
//	dx/dt = sigma * (y - x)
//	dy/dt = x * (rho - z) - y
//	dz/dt = x * y - beta * z
package physics
