package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/gui"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/logger"
	"github.com/san-kum/lorenz/internal/viz"
)

var (
	configFile string
	preset     string
	verbose    bool
	backend    string
	// overrides, applied only when the flag is set
	integrator    string
	dt            float64
	sigma         float64
	rho           float64
	beta          float64
	stepsPerFrame int
	maxPoints     int
	fps           float64
	scaleMode     string
	haltOnDegen   bool
)

// main registers the lorenz commands and runs the window when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "lorenz",
		Short:         "rotating lorenz attractor",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a preset ("+strings.Join(config.ListPresets(), ", ")+")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator ("+strings.Join(integrators.Names(), ", ")+")")
	pf.Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	pf.Float64Var(&sigma, "sigma", 10, "sigma coefficient")
	pf.Float64Var(&rho, "rho", 28, "rho coefficient")
	pf.Float64Var(&beta, "beta", 8.0/3.0, "beta coefficient")
	pf.IntVar(&stepsPerFrame, "steps", config.DefaultStepsPerFrame, "integration steps per frame")
	pf.IntVar(&maxPoints, "max-points", config.DefaultMaxPoints, "trail length")
	pf.Float64Var(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.StringVar(&scaleMode, "scale-mode", config.DefaultScaleMode, "reference or independent")
	pf.BoolVar(&haltOnDegen, "halt-on-degenerate", false, "stop when the trail has no extent")

	rootCmd.Flags().StringVar(&backend, "backend", "raylib", "window backend (raylib, ebiten)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate in a desktop window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().StringVar(&backend, "backend", "raylib", "window backend (raylib, ebiten)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "animate in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := resolve(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg, log)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s integrator=%s scale=%s steps=%d max_points=%d\n",
					name, p.Integrator, p.ScaleMode, p.StepsPerFrame, p.MaxPoints)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "show or write configuration",
	}
	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configShowCmd, configInitCmd)

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd(), plotCmd(), analyzeCmd(), phaseCmd(), presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, log, err := resolve(cmd)
	if err != nil {
		return err
	}
	switch backend {
	case "raylib":
		return gui.RunRaylib(cfg, log)
	case "ebiten":
		return gui.RunEbiten(cfg, log)
	default:
		return fmt.Errorf("unknown backend: %s (available: raylib, ebiten)", backend)
	}
}

// resolve builds the config from preset, then file, then flags set on the
// command line.
func resolve(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	log := logger.New(os.Stderr, verbose)

	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		log.Debug("preset %s", preset)
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		log.Debug("config file %s", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("sigma") {
		cfg.Params.Sigma = sigma
	}
	if flags.Changed("rho") {
		cfg.Params.Rho = rho
	}
	if flags.Changed("beta") {
		cfg.Params.Beta = beta
	}
	if flags.Changed("steps") {
		cfg.StepsPerFrame = stepsPerFrame
	}
	if flags.Changed("max-points") {
		cfg.MaxPoints = maxPoints
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("scale-mode") {
		cfg.ScaleMode = scaleMode
	}
	if flags.Changed("halt-on-degenerate") {
		cfg.HaltOnDegenerate = haltOnDegen
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	log.Debug("resolved config: %+v", *cfg)
	return cfg, log, nil
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolve(cmd)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(cfg)
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, log, err := resolve(cmd)
	if err != nil {
		return err
	}
	path := "lorenz.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	log.Info("wrote %s", path)
	return nil
}
