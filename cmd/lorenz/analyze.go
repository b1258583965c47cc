package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lorenz/internal/analysis"
	"github.com/san-kum/lorenz/internal/anim"
	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/experiment"
	"github.com/san-kum/lorenz/internal/render"
)

var axisNames = []string{"x", "y", "z"}

func parseAxis(s string) (int, error) {
	for i, name := range axisNames {
		if strings.EqualFold(s, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown axis: %s (available: x, y, z)", s)
}

func plotCmd() *cobra.Command {
	var frames int

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "plot x, y and z of the trail after a headless run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := resolve(cmd)
			if err != nil {
				return err
			}
			d, err := anim.New(cfg, render.NewDiscard(cfg.Size, cfg.Size), log)
			if err != nil {
				return err
			}
			if err := d.RunFrames(frames); err != nil {
				return err
			}

			for axis, name := range axisNames {
				data := d.Path().Axis(axis)
				if len(data) == 0 {
					return dynamo.ErrEmptyPath
				}
				graph := asciigraph.Plot(data,
					asciigraph.Height(10),
					asciigraph.Width(80),
					asciigraph.Caption(fmt.Sprintf("%s (%d points)", name, len(data))),
				)
				fmt.Println(graph)
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 100, "frames to run")
	return cmd
}

func analyzeCmd() *cobra.Command {
	var (
		samples  int
		axisName string
		axes     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "spectrum, lyapunov exponent and metrics of a long run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := resolve(cmd)
			if err != nil {
				return err
			}
			axis, err := parseAxis(axisName)
			if err != nil {
				return err
			}

			exp, err := experiment.New(cfg)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			result, err := exp.Run(ctx, samples)
			if err != nil {
				return err
			}
			log.Debug("integrated %d steps", result.StepsTaken)

			series := result.Axis(axis)
			freq, power := analysis.DominantFrequency(series, cfg.Dt)
			ps := analysis.PowerSpectrum(series)
			// the interesting part of the spectrum is the low end
			if n := len(ps) / 20; n > 10 {
				ps = ps[:n]
			}
			fmt.Println(asciigraph.Plot(ps,
				asciigraph.Height(15),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", axisNames[axis])),
			))
			fmt.Println()

			lambda, err := analysis.LyapunovExponent(exp.System(), exp.Integrator(), cfg.Seed, cfg.Dt, samples, 1e-8)
			if err != nil {
				return err
			}
			var spread [3]float64
			if axes {
				if spread, err = analysis.LyapunovSpectrum(exp.System(), exp.Integrator(), cfg.Seed, cfg.Dt, samples, 1e-8); err != nil {
					return err
				}
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "steps\t%d\n", result.StepsTaken)
			fmt.Fprintf(w, "dominant frequency\t%.4f (power %.3g)\n", freq, power)
			fmt.Fprintf(w, "lyapunov exponent\t%.4f\n", lambda)
			if axes {
				fmt.Fprintf(w, "lyapunov by axis\t%.4f %.4f %.4f\n", spread[0], spread[1], spread[2])
			}
			names := make([]string, 0, len(result.Metrics))
			for name := range result.Metrics {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(w, "%s\t%.4g\n", name, result.Metrics[name])
			}

			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 20000, "integration steps")
	cmd.Flags().StringVar(&axisName, "axis", "x", "axis for the spectrum")
	cmd.Flags().BoolVar(&axes, "lyapunov-axes", false, "repeat the lyapunov estimate with the perturbation along each axis")
	return cmd
}

func phaseCmd() *cobra.Command {
	var (
		samples  int
		xName    string
		yName    string
		poincare bool
	)

	cmd := &cobra.Command{
		Use:   "phase",
		Short: "phase portrait or poincaré section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := resolve(cmd)
			if err != nil {
				return err
			}
			xAxis, err := parseAxis(xName)
			if err != nil {
				return err
			}
			yAxis, err := parseAxis(yName)
			if err != nil {
				return err
			}
			exp, err := experiment.New(cfg)
			if err != nil {
				return err
			}

			if poincare {
				// the plane through both non-trivial fixed points
				threshold := cfg.Params.Rho - 1
				section, err := analysis.PoincareSection(exp.System(), exp.Integrator(), cfg.Seed, 2, threshold, xAxis, yAxis, cfg.Dt, samples)
				if err != nil {
					return err
				}
				if len(section) == 0 {
					fmt.Println("no crossings detected")
					return nil
				}
				fmt.Print(analysis.PhasePortraitToASCII(section, 80, 30))
				fmt.Printf("poincaré section z=%.2f, %s vs %s, %d crossings\n", threshold, axisNames[yAxis], axisNames[xAxis], len(section))
				return nil
			}

			result, err := exp.Run(context.Background(), samples)
			if err != nil {
				return err
			}
			fmt.Print(analysis.PhasePortraitToASCII(analysis.PhasePortrait(result.Points, xAxis, yAxis), 80, 30))
			fmt.Printf("%s vs %s, %d points\n", axisNames[yAxis], axisNames[xAxis], len(result.Points))
			return nil
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 10000, "integration steps")
	cmd.Flags().StringVar(&xName, "x-axis", "x", "horizontal axis")
	cmd.Flags().StringVar(&yName, "y-axis", "z", "vertical axis")
	cmd.Flags().BoolVar(&poincare, "poincare", false, "plot crossings of z = rho-1 instead")
	return cmd
}
