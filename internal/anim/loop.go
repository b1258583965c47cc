package anim

import (
	"context"
	"sync"
	"time"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// Clock abstracts the timer so tests can fire frames by hand.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Loop calls a frame function, waits Interval, and repeats. The wait starts
// after the frame returns, so two frames never run at once.
type Loop struct {
	Interval time.Duration
	clock    Clock

	once sync.Once
	stop chan struct{}
}

func NewLoop(interval time.Duration) *Loop {
	return NewLoopWithClock(interval, realClock{})
}

func NewLoopWithClock(interval time.Duration, clock Clock) *Loop {
	return &Loop{Interval: interval, clock: clock, stop: make(chan struct{})}
}

// Stop cancels the pending wait. It is safe to call more than once and from
// any goroutine.
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.stop) })
}

// Run blocks until frame fails, ctx is done or Stop is called. A stop
// returns ErrStopped.
func (l *Loop) Run(ctx context.Context, frame func() error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return dynamo.ErrStopped
		default:
		}

		if err := frame(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return dynamo.ErrStopped
		case <-l.clock.After(l.Interval):
		}
	}
}

// Run drives d with a real-time loop until ctx is done or a frame fails.
func (d *Driver) Run(ctx context.Context, l *Loop) error {
	d.log.Info("animation started: interval=%v", l.Interval)
	err := l.Run(ctx, d.Frame)
	d.log.Info("animation stopped after %d frames: %v", d.frame, err)
	return err
}
