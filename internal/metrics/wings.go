package metrics

import "github.com/san-kum/lorenz/internal/dynamo"

// WingSwitches counts how often the trajectory crosses x=0, i.e. moves
// from one lobe of the attractor to the other.
type WingSwitches struct {
	count   int
	lastPos bool
	started bool
}

func NewWingSwitches() *WingSwitches { return &WingSwitches{} }

func (w *WingSwitches) Name() string { return "wing_switches" }

func (w *WingSwitches) Observe(p dynamo.Point) {
	if p.X == 0 {
		return
	}
	pos := p.X > 0
	if w.started && pos != w.lastPos {
		w.count++
	}
	w.lastPos = pos
	w.started = true
}

func (w *WingSwitches) Value() float64 { return float64(w.count) }

func (w *WingSwitches) Reset() {
	w.count = 0
	w.started = false
}
