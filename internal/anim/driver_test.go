package anim_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lorenz/internal/anim"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/logger"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/san-kum/lorenz/internal/render"
)

var _ = Describe("Driver", func() {
	var (
		cfg *config.Config
		rec *render.Recorder
		drv *anim.Driver
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		rec = render.NewRecorder(cfg.Size, cfg.Size)
	})

	JustBeforeEach(func() {
		var err error
		drv, err = anim.New(cfg, rec, logger.Discard())
		Expect(err).NotTo(HaveOccurred())
	})

	Context("with the reference constants", func() {
		It("grows the path by ten points on the first frame", func() {
			Expect(drv.Frame()).To(Succeed())
			Expect(drv.Path().Len()).To(Equal(11))
			Expect(drv.LastStats().Dropped).To(BeZero())
		})

		It("caps the path at 1000 points after 100 frames", func() {
			Expect(drv.RunFrames(100)).To(Succeed())
			Expect(drv.Path().Len()).To(Equal(1000))
			Expect(drv.LastStats().Dropped).To(Equal(1))
			Expect(drv.Frames()).To(Equal(100))
		})

		It("clears and strokes exactly once per frame", func() {
			Expect(drv.RunFrames(100)).To(Succeed())
			Expect(rec.Clears).To(Equal(100))
			Expect(rec.Strokes).To(Equal(100))
			Expect(rec.Polylines).To(HaveLen(1))
		})

		It("strokes the whole path before trimming it", func() {
			Expect(drv.RunFrames(100)).To(Succeed())
			Expect(rec.Polylines[0]).To(HaveLen(1001))
		})

		It("drops ten points per frame once the cap is reached", func() {
			Expect(drv.RunFrames(101)).To(Succeed())
			Expect(drv.Path().Len()).To(Equal(1000))
			Expect(drv.LastStats().Dropped).To(Equal(10))
		})

		It("keeps the newest points in chronological order", func() {
			Expect(drv.RunFrames(150)).To(Succeed())
			sys := physics.NewLorenz(cfg.Params)
			pts := drv.Path().Points()
			for i := 1; i < len(pts); i++ {
				Expect(pts[i]).To(Equal(integrators.NewEuler().Step(sys, pts[i-1], cfg.Dt)))
			}
		})

		It("advances the rotation by 0.01 per frame", func() {
			Expect(drv.Frame()).To(Succeed())
			first := drv.Angle()
			Expect(drv.Frame()).To(Succeed())
			Expect(drv.Angle() - first).To(BeNumerically("~", 0.01, 1e-12))
			Expect(drv.RunFrames(98)).To(Succeed())
			Expect(drv.Angle()).To(BeNumerically("~", 1.0, 1e-9))
		})

		It("reports frame stats to observers", func() {
			var seen []anim.FrameStats
			drv.AddObserver(anim.ObserverFunc(func(s anim.FrameStats) { seen = append(seen, s) }))
			Expect(drv.RunFrames(3)).To(Succeed())
			Expect(seen).To(HaveLen(3))
			Expect(seen[2].Frame).To(Equal(3))
			Expect(seen[2].PathLen).To(Equal(31))
			Expect(seen[2].Degenerate).To(BeFalse())
		})
	})

	Context("when every point coincides", func() {
		BeforeEach(func() {
			cfg.Seed = dynamo.Point{}
		})

		It("keeps animating and flags the frame", func() {
			Expect(drv.RunFrames(5)).To(Succeed())
			Expect(drv.LastStats().Degenerate).To(BeTrue())
			Expect(rec.Strokes).To(Equal(5))
		})

		It("draws nothing visible", func() {
			Expect(drv.Frame()).To(Succeed())
			Expect(rec.Polylines[0]).To(BeEmpty())
		})

		Context("and halting is enabled", func() {
			BeforeEach(func() {
				cfg.HaltOnDegenerate = true
			})

			It("returns a frame error", func() {
				err := drv.Frame()
				Expect(errors.Is(err, dynamo.ErrDegenerateGeometry)).To(BeTrue())
				var fe *dynamo.FrameError
				Expect(errors.As(err, &fe)).To(BeTrue())
				Expect(fe.Frame).To(Equal(1))
			})
		})
	})
})

var _ = Describe("Driver construction", func() {
	It("rejects an invalid config", func() {
		cfg := config.DefaultConfig()
		cfg.Dt = 0
		_, err := anim.New(cfg, render.NewDiscard(600, 600), nil)
		Expect(err).To(MatchError(dynamo.ErrInvalidConfig))
	})

	It("logs degenerate transitions once", func() {
		var buf bytes.Buffer
		cfg := config.DefaultConfig()
		cfg.Seed = dynamo.Point{}
		drv, err := anim.New(cfg, render.NewDiscard(600, 600), logger.New(&buf, false))
		Expect(err).NotTo(HaveOccurred())

		Expect(drv.RunFrames(4)).To(Succeed())
		Expect(bytes.Count(buf.Bytes(), []byte("degenerate geometry"))).To(Equal(1))
	})
})
