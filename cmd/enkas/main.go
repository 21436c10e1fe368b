package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/dynsim/internal/config"
	"github.com/san-kum/dynsim/internal/ioformat"
	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/render"
	"github.com/san-kum/dynsim/internal/runner"
)

var (
	dataDir         string
	configFile      string
	generationType  string
	method          string
	seed            int64
	particleCount   int
	timeStep        float64
	duration        float64
	softening       float64
	thetaMAC        float64
	timeStepParam   float64
	renderStep      float64
	diagnosticsStep float64
	analyticsStep   float64
	preset          string
	streamPath      string
	live            bool
	verbose         bool
	svgWidth        int
	svgHeight       int
)

// main registers cmd/enkas's subcommands and executes the root command,
// the N-body counterpart of cmd/dynsim's cobra tree: run/generate/list
// replace runCmd/benchCmd/listCmd, export-csv and validate are kept
// under the same names, and replay/live stand in for dynsim's
// plot/phase and live commands.
func main() {
	rootCmd := &cobra.Command{
		Use:   "enkas",
		Short: "N-body gravitational simulation engine",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".enkas", "output directory for trajectory/diagnostics CSV files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	runCmd := &cobra.Command{
		Use:   "run [name]",
		Short: "generate an initial system and integrate it, writing trajectory and diagnostics CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "YAML config file (overrides the flags below)")
	runCmd.Flags().StringVar(&preset, "preset", "", "named preset for --generator")
	runCmd.Flags().StringVar(&generationType, "generator", "uniform_sphere", "generator type (uniform_cube, uniform_sphere, normal_sphere, plummer_sphere, spiral_galaxy, collision_model, flyby_model, stream)")
	runCmd.Flags().StringVar(&method, "method", "Leapfrog", "integration method (Euler, Leapfrog, Hermite, \"Hermite Individual Time Steps\", \"Barnes-Hut Algorithm (Leapfrog)\")")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().IntVar(&particleCount, "particles", config.DefaultParticleCount, "particle count")
	runCmd.Flags().Float64Var(&timeStep, "dt", config.DefaultTimeStep, "integration time step")
	runCmd.Flags().Float64Var(&duration, "duration", config.DefaultDuration, "total simulated time")
	runCmd.Flags().Float64Var(&softening, "softening", config.DefaultSoftening, "gravitational softening length")
	runCmd.Flags().Float64Var(&thetaMAC, "theta", config.DefaultThetaMAC, "Barnes-Hut opening angle")
	runCmd.Flags().Float64Var(&timeStepParam, "eta", config.DefaultTimeStepParameter, "HITS adaptive time-step parameter")
	runCmd.Flags().Float64Var(&renderStep, "render-step", config.DefaultRenderStep, "trajectory sampling interval")
	runCmd.Flags().Float64Var(&diagnosticsStep, "diagnostics-step", config.DefaultDiagnosticsStep, "diagnostics sampling interval")
	runCmd.Flags().Float64Var(&analyticsStep, "analytics-step", config.DefaultAnalyticsStep, "analytics sampling interval")
	runCmd.Flags().StringVar(&streamPath, "stream", "", "CSV file to read particles from when --generator=stream")
	runCmd.Flags().BoolVar(&live, "live", false, "show a live bubbletea progress screen while the run executes")

	generateCmd := &cobra.Command{
		Use:   "generate [name]",
		Short: "write a default config.yaml for a generator type",
		Args:  cobra.ExactArgs(1),
		RunE:  generateConfig,
	}
	generateCmd.Flags().StringVar(&generationType, "generator", "uniform_sphere", "generator type")
	generateCmd.Flags().StringVar(&preset, "preset", "", "named preset to seed the file with")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list known generator types, integration methods, and presets",
		RunE:  listRegistry,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [name]",
		Short: "print a run's trajectory CSV to stdout, re-validating every row along the way",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	renderSVGCmd := &cobra.Command{
		Use:   "render-svg [name]",
		Short: "render a run's final trajectory sample as an SVG scatter plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	renderSVGCmd.Flags().IntVar(&svgWidth, "width", 640, "SVG canvas width in pixels")
	renderSVGCmd.Flags().IntVar(&svgHeight, "height", 480, "SVG canvas height in pixels")

	validateCmd := &cobra.Command{
		Use:   "validate [name]",
		Short: "sanity-check a trajectory CSV file's schema",
		Args:  cobra.ExactArgs(1),
		RunE:  validateTrajectory,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [name]",
		Short: "print asciigraph energy/virial sparklines from diagnostics recomputed over a saved trajectory CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}

	rootCmd.AddCommand(runCmd, generateCmd, listCmd, exportCSVCmd, renderSVGCmd, validateCmd, replayCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func trajectoryPath(name string) string  { return dataDir + "/" + name + ".trajectory.csv" }
func diagnosticsPath(name string) string { return dataDir + "/" + name + ".diagnostics.csv" }

func setupLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	nbody.SetDefaultLogger(logger)
	return logger
}

func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}

	if preset != "" {
		cfg := config.GetPreset(generationType, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q for generator %q (available: %v)", preset, generationType, config.ListPresets(generationType))
		}
		return cfg, nil
	}

	cfg := config.DefaultConfig()
	cfg.Seed = seed
	cfg.Generation.Type = generationType
	cfg.Generation.ParticleCount = particleCount
	cfg.Generation.StreamPath = streamPath
	cfg.Simulation.Method = method
	cfg.Simulation.TimeStep = timeStep
	cfg.Simulation.Duration = duration
	cfg.Simulation.SofteningParameter = softening
	cfg.Simulation.ThetaMAC = thetaMAC
	cfg.Simulation.TimeStepParameter = timeStepParam
	cfg.Simulation.RenderStep = renderStep
	cfg.Simulation.DiagnosticsStep = diagnosticsStep
	cfg.Simulation.AnalyticsStep = analyticsStep
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	name := args[0]
	logger := setupLogger()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	var streamReader *os.File
	if cfg.Generation.Type == "stream" {
		f, err := os.Open(cfg.Generation.StreamPath)
		if err != nil {
			return fmt.Errorf("opening stream source: %w", err)
		}
		defer f.Close()
		streamReader = f
	}

	rn, err := runner.New(*cfg, trajectoryPath(name), diagnosticsPath(name), streamReader)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info("starting run", "name", name, "generator", cfg.Generation.Type, "method", cfg.Simulation.Method)
	start := time.Now()

	if live {
		liveQueue := rn.EnableLive(queueSize)
		model := render.NewLiveModel(ctx, liveQueue)
		program := tea.NewProgram(model)

		resultCh := make(chan runResult, 1)
		go func() {
			result, err := rn.Run(ctx)
			resultCh <- runResult{result, err}
			program.Send(tea.QuitMsg{})
		}()

		if _, err := program.Run(); err != nil {
			return err
		}
		outcome := <-resultCh
		if outcome.err != nil {
			return outcome.err
		}
		return printResult(name, outcome.result, time.Since(start))
	}

	result, err := rn.Run(ctx)
	if err != nil {
		return err
	}
	return printResult(name, result, time.Since(start))
}

const queueSize = 64

type runResult struct {
	result *runner.Result
	err    error
}

func printResult(name string, result *runner.Result, elapsed time.Duration) error {
	fmt.Printf("completed %s in %v\n", name, elapsed)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Printf("final time: %.4f\n", result.FinalTime)
	fmt.Printf("trajectory samples: %d (%s)\n", result.TrajectorySamples, trajectoryPath(name))
	fmt.Printf("diagnostics samples: %d (%s)\n", result.DiagnosticsSamples, diagnosticsPath(name))
	return nil
}

func generateConfig(cmd *cobra.Command, args []string) error {
	name := args[0]

	var cfg *config.Config
	if preset != "" {
		cfg = config.GetPreset(generationType, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset %q for generator %q", preset, generationType)
		}
	} else {
		cfg = config.DefaultConfig()
		cfg.Generation.Type = generationType
	}

	path := name + ".yaml"
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func listRegistry(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "GENERATOR TYPES")
	for _, t := range runner.GeneratorTypes {
		fmt.Fprintf(w, "  %s\n", t)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "INTEGRATION METHODS")
	for _, m := range runner.MethodNames {
		fmt.Fprintf(w, "  %s\n", m)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PRESETS")
	for _, t := range runner.GeneratorTypes {
		for _, p := range config.ListPresets(t) {
			fmt.Fprintf(w, "  %s/%s\n", t, p)
		}
	}

	return w.Flush()
}

// exportCSV re-reads a run's trajectory file through the same parser
// the stream generator uses and re-emits it to stdout, so a malformed
// row surfaces as a shorter-than-expected output rather than silently
// passing through untouched.
func exportCSV(cmd *cobra.Command, args []string) error {
	name := args[0]

	snapshots, err := ioformat.ReadTrajectory(trajectoryPath(name))
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		return fmt.Errorf("no trajectory samples in %s", trajectoryPath(name))
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	if err := w.Write([]string{"time", "pos_x", "pos_y", "pos_z", "vel_x", "vel_y", "vel_z", "mass"}); err != nil {
		return err
	}
	for _, snap := range snapshots {
		for i := 0; i < snap.Data.Count(); i++ {
			p := snap.Data.Positions[i]
			v := snap.Data.Velocities[i]
			row := []string{
				strconv.FormatFloat(snap.Time, 'g', -1, 64),
				strconv.FormatFloat(p.X, 'g', -1, 64), strconv.FormatFloat(p.Y, 'g', -1, 64), strconv.FormatFloat(p.Z, 'g', -1, 64),
				strconv.FormatFloat(v.X, 'g', -1, 64), strconv.FormatFloat(v.Y, 'g', -1, 64), strconv.FormatFloat(v.Z, 'g', -1, 64),
				strconv.FormatFloat(snap.Data.Masses[i], 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	name := args[0]

	snapshots, err := ioformat.ReadTrajectory(trajectoryPath(name))
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		return fmt.Errorf("no trajectory samples in %s", trajectoryPath(name))
	}

	last := snapshots[len(snapshots)-1]
	svg := render.SystemToSVG(last.Data, svgWidth, svgHeight)

	outPath := name + ".svg"
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (t=%.4f, %d particles)\n", outPath, last.Time, last.Data.Count())
	return nil
}

func validateTrajectory(cmd *cobra.Command, args []string) error {
	name := args[0]
	status := ioformat.ValidateTrajectoryFile(trajectoryPath(name))
	fmt.Printf("%s: %s\n", trajectoryPath(name), status)
	if status != ioformat.FileChecked {
		os.Exit(1)
	}
	return nil
}

func replayRun(cmd *cobra.Command, args []string) error {
	name := args[0]

	snapshots, err := ioformat.ReadTrajectory(trajectoryPath(name))
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		return fmt.Errorf("no trajectory samples in %s", trajectoryPath(name))
	}

	history := render.NewHistory(len(snapshots))
	for _, snap := range snapshots {
		diag := nbody.ComputeDiagnostics(snap.Data, softening)
		history.Push(diag)
	}

	fmt.Printf("replay: %s (%d samples)\n\n", name, len(snapshots))
	if graph := history.EnergyPlot(80, 12); graph != "" {
		fmt.Println(graph)
		fmt.Println()
	}
	if graph := history.VirialPlot(80, 10); graph != "" {
		fmt.Println(graph)
	}
	return nil
}
