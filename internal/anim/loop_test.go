package anim_test

import (
	"context"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lorenz/internal/anim"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/render"
)

// instantClock fires every wait immediately and records the requested delays.
type instantClock struct {
	waits []time.Duration
}

func (c *instantClock) After(d time.Duration) <-chan time.Time {
	c.waits = append(c.waits, d)
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

var _ = Describe("Loop", func() {
	var clock *instantClock

	BeforeEach(func() {
		clock = &instantClock{}
	})

	It("waits one interval after every frame", func() {
		loop := anim.NewLoopWithClock(time.Second/60, clock)
		frames := 0
		err := loop.Run(context.Background(), func() error {
			frames++
			if frames == 5 {
				loop.Stop()
			}
			return nil
		})

		Expect(err).To(MatchError(dynamo.ErrStopped))
		Expect(frames).To(Equal(5))
		Expect(clock.waits).To(HaveLen(5))
		for _, w := range clock.waits {
			Expect(w).To(Equal(time.Second / 60))
		}
	})

	It("never runs two frames at once", func() {
		loop := anim.NewLoopWithClock(time.Millisecond, clock)
		var inFlight, maxInFlight, frames int32
		loop.Run(context.Background(), func() error {
			n := atomic.AddInt32(&inFlight, 1)
			if n > atomic.LoadInt32(&maxInFlight) {
				atomic.StoreInt32(&maxInFlight, n)
			}
			if atomic.AddInt32(&frames, 1) == 50 {
				loop.Stop()
			}
			atomic.AddInt32(&inFlight, -1)
			return nil
		})
		Expect(maxInFlight).To(Equal(int32(1)))
	})

	It("stops on the first frame error", func() {
		loop := anim.NewLoopWithClock(time.Millisecond, clock)
		boom := dynamo.ErrDegenerateGeometry
		frames := 0
		err := loop.Run(context.Background(), func() error {
			frames++
			if frames == 3 {
				return boom
			}
			return nil
		})
		Expect(err).To(MatchError(boom))
		Expect(frames).To(Equal(3))
	})

	It("does not run when the context is already done", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		frames := 0
		err := anim.NewLoopWithClock(time.Millisecond, clock).Run(ctx, func() error {
			frames++
			return nil
		})
		Expect(err).To(MatchError(context.Canceled))
		Expect(frames).To(BeZero())
	})

	It("tolerates repeated stops", func() {
		loop := anim.NewLoop(time.Hour)
		loop.Stop()
		loop.Stop()
		Expect(loop.Run(context.Background(), func() error { return nil })).To(MatchError(dynamo.ErrStopped))
	})

	It("can be stopped from another goroutine while waiting", func() {
		loop := anim.NewLoop(time.Hour)
		done := make(chan error, 1)
		go func() { done <- loop.Run(context.Background(), func() error { return nil }) }()
		loop.Stop()
		Eventually(done).Should(Receive(MatchError(dynamo.ErrStopped)))
	})

	It("drives a driver in real time", func() {
		cfg := config.DefaultConfig()
		rec := render.NewRecorder(cfg.Size, cfg.Size)
		drv, err := anim.New(cfg, rec, nil)
		Expect(err).NotTo(HaveOccurred())

		loop := anim.NewLoopWithClock(cfg.FrameInterval(), clock)
		drv.AddObserver(anim.ObserverFunc(func(s anim.FrameStats) {
			if s.Frame == 100 {
				loop.Stop()
			}
		}))

		Expect(drv.Run(context.Background(), loop)).To(MatchError(dynamo.ErrStopped))
		Expect(drv.Path().Len()).To(Equal(1000))
		Expect(rec.Clears).To(Equal(100))
	})
})
