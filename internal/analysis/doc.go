// Package analysis characterizes the attractor beyond drawing it:
//
//   - [PowerSpectrum] and [DominantFrequency]: spectral content of one axis
//   - [LyapunovExponent]: largest exponent via trajectory separation
//   - [PhasePortrait] and [PoincareSection]: two-axis views of the flow
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda, err := analysis.LyapunovExponent(sys, integ, dynamo.Seed, 0.01, 20000, 1e-8)
//	if err == nil && lambda > 0 {
//	    // System is chaotic
//	}
package analysis
