// Command lorenzview renders an interactive Lorenz attractor in the
// terminal. The root command opens the viewer; subcommands inspect the
// available presets and the raw trajectory.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/lorenzview/internal/config"
	"github.com/san-kum/lorenzview/internal/lorenz"
	"github.com/san-kum/lorenzview/internal/ui"
)

var (
	sigmaFlag  float64
	betaFlag   float64
	rhoFlag    float64
	azimuth    int
	elevation  int
	zoom       float64
	frameRate  int
	configFile string
	preset     string
	traceCount int
)

func main() {
	def := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "lorenzview",
		Short: "Interactive Lorenz attractor viewer for the terminal",
		Long: `lorenzview integrates the Lorenz system and draws the orbit as a
rotatable 3D scene in your terminal. Arrow keys pan the view, o starts
the spin, s/b/r tune the coefficients. Press ? inside the viewer for
the full key reference.`,
		RunE: runView,
	}
	rootCmd.Flags().Float64Var(&sigmaFlag, "s", def.S, "sigma coefficient")
	rootCmd.Flags().Float64Var(&betaFlag, "b", def.B, "beta coefficient")
	rootCmd.Flags().Float64Var(&rhoFlag, "r", def.R, "rho coefficient")
	rootCmd.Flags().IntVar(&azimuth, "azimuth", def.Azimuth, "initial azimuth in degrees")
	rootCmd.Flags().IntVar(&elevation, "elevation", def.Elevation, "initial elevation in degrees")
	rootCmd.Flags().Float64Var(&zoom, "zoom", def.Zoom, "initial zoom factor")
	rootCmd.Flags().IntVar(&frameRate, "fps", def.FPS, "animation frame rate")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "start from a preset configuration")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tS\tB\tR\tZOOM\tVIEW")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%d,%d\n",
					name, p.S, p.B, p.R, p.Zoom, p.Azimuth, p.Elevation)
			}
			return w.Flush()
		},
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the first trajectory points without opening the viewer",
		RunE:  runTrace,
	}
	traceCmd.Flags().Float64Var(&sigmaFlag, "s", def.S, "sigma coefficient")
	traceCmd.Flags().Float64Var(&betaFlag, "b", def.B, "beta coefficient")
	traceCmd.Flags().Float64Var(&rhoFlag, "r", def.R, "rho coefficient")
	traceCmd.Flags().IntVarP(&traceCount, "points", "n", 20, "number of points to print")

	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(traceCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runView(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// Explicit flags win over both the preset and the config file.
	if cmd.Flags().Changed("s") {
		cfg.S = sigmaFlag
	}
	if cmd.Flags().Changed("b") {
		cfg.B = betaFlag
	}
	if cmd.Flags().Changed("r") {
		cfg.R = rhoFlag
	}
	if cmd.Flags().Changed("azimuth") {
		cfg.Azimuth = azimuth
	}
	if cmd.Flags().Changed("elevation") {
		cfg.Elevation = elevation
	}
	if cmd.Flags().Changed("zoom") {
		cfg.Zoom = zoom
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}

	return ui.Run(cfg)
}

func runTrace(cmd *cobra.Command, args []string) error {
	n := traceCount
	if n < 1 {
		n = 1
	}
	if n > lorenz.Steps {
		n = lorenz.Steps
	}

	params := lorenz.Params{S: sigmaFlag, B: betaFlag, R: rhoFlag}
	pts := lorenz.Trajectory(params, nil)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tX\tY\tZ")
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%.6f\n", i+1, pts[i].X, pts[i].Y, pts[i].Z)
	}
	return w.Flush()
}
