package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/lorenz/internal/dynamo"
)

var registry = map[string]func() dynamo.Integrator{
	"euler":      func() dynamo.Integrator { return NewEuler() },
	"sequential": func() dynamo.Integrator { return NewSequential() },
	"rk4":        func() dynamo.Integrator { return NewRK4() },
}

// Get returns a fresh integrator by name.
func Get(name string) (dynamo.Integrator, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
