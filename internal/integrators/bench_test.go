package integrators

import (
	"testing"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/physics"
)

func benchmarkIntegrator(b *testing.B, integ dynamo.Integrator) {
	sys := physics.NewLorenz(dynamo.DefaultParams())
	p := dynamo.Seed

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p = integ.Step(sys, p, 0.01)
	}
}

func BenchmarkEuler(b *testing.B)      { benchmarkIntegrator(b, NewEuler()) }
func BenchmarkSequential(b *testing.B) { benchmarkIntegrator(b, NewSequential()) }
func BenchmarkRK4(b *testing.B)        { benchmarkIntegrator(b, NewRK4()) }
