package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/lorenz/internal/anim"
	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/export"
	"github.com/san-kum/lorenz/internal/render"
)

func runCmd() *cobra.Command {
	var (
		frames   int
		realtime bool
		svgPath  string
		pngPath  string
		gifPath  string
		gifEvery int
		pixels   int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run frames headless and write snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 1 {
				return fmt.Errorf("frames must be at least 1, got %d", frames)
			}
			cfg, log, err := resolve(cmd)
			if err != nil {
				return err
			}

			discard := render.NewDiscard(cfg.Size, cfg.Size)
			surfaces := []render.Surface{discard}

			var svg *export.SVG
			if svgPath != "" {
				svg = export.NewSVG(cfg.Size, cfg.Size, cfg.BackgroundColor())
				surfaces = append(surfaces, svg)
			}
			var raster *export.Raster
			if pngPath != "" || gifPath != "" {
				px := pixels
				if px <= 0 {
					px = int(cfg.Size)
				}
				raster = export.NewRaster(px, px, cfg.Size, cfg.Size, cfg.BackgroundColor())
				surfaces = append(surfaces, raster)
			}

			d, err := anim.New(cfg, render.NewTee(surfaces...), log)
			if err != nil {
				return err
			}

			var rec *export.GIFRecorder
			if gifPath != "" {
				rec = export.NewGIFRecorder(raster, cfg.StrokeColor(), cfg.FPS, gifEvery)
				d.AddObserver(rec)
			}

			degenerate, dropped := 0, 0
			d.AddObserver(anim.ObserverFunc(func(s anim.FrameStats) {
				if s.Degenerate {
					degenerate++
				}
				dropped += s.Dropped
			}))

			var interval time.Duration
			if realtime {
				interval = cfg.FrameInterval()
			}
			loop := anim.NewLoop(interval)
			d.AddObserver(anim.ObserverFunc(func(s anim.FrameStats) {
				if s.Frame >= frames {
					loop.Stop()
				}
			}))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			start := time.Now()
			runErr := d.Run(ctx, loop)
			elapsed := time.Since(start)
			if errors.Is(runErr, dynamo.ErrStopped) || errors.Is(runErr, context.Canceled) {
				runErr = nil
			}

			if svg != nil {
				if err := writeFile(svgPath, func(w io.Writer) error { _, err := svg.WriteTo(w); return err }); err != nil {
					return err
				}
				log.Info("wrote %s", svgPath)
			}
			if pngPath != "" {
				if err := writeFile(pngPath, raster.WritePNG); err != nil {
					return err
				}
				log.Info("wrote %s", pngPath)
			}
			if rec != nil {
				if err := writeFile(gifPath, rec.Encode); err != nil {
					return err
				}
				log.Info("wrote %s (%d frames)", gifPath, rec.Len())
			}

			last := d.LastStats()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "frames\t%d\n", d.Frames())
			fmt.Fprintf(w, "points\t%d\n", last.PathLen)
			fmt.Fprintf(w, "dropped\t%d\n", dropped)
			fmt.Fprintf(w, "angle\t%.4f\n", last.Angle)
			fmt.Fprintf(w, "bounds\t%+v .. %+v\n", last.Bounds.Min, last.Bounds.Max)
			fmt.Fprintf(w, "degenerate frames\t%d\n", degenerate)
			fmt.Fprintf(w, "strokes\t%d\n", discard.Strokes)
			fmt.Fprintf(w, "elapsed\t%v\n", elapsed.Round(time.Millisecond))
			w.Flush()

			return runErr
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 100, "number of frames")
	cmd.Flags().BoolVar(&realtime, "realtime", false, "wait the frame interval between frames")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write the last frame as svg")
	cmd.Flags().StringVar(&pngPath, "png", "", "write the last frame as png")
	cmd.Flags().StringVar(&gifPath, "gif", "", "record frames as an animated gif")
	cmd.Flags().IntVar(&gifEvery, "gif-every", 2, "record every nth frame")
	cmd.Flags().IntVar(&pixels, "pixels", 0, "raster width and height (default: surface size)")
	return cmd
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
