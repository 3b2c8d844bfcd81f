package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/moldyn/internal/config"
)

var (
	configFile string
	preset     string
	molecule   string
	dt         float64
	targetTemp float64
	cutoff     float64
	tau        float64
	thermostat string
	steps      int
	seed       int64
	verbose    bool
	// live view tick interval
	interval time.Duration
	// serve address
	addr string
	// designer candidate count
	count int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "moldyn",
		Short: "small-scale classical molecular dynamics",
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log engine events")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and print a summary",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a simulation with a live terminal view",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().DurationVar(&interval, "interval", 16*time.Millisecond, "tick interval")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "run a simulation and stream snapshots over websocket",
		RunE:  runServe,
	}
	addSimFlags(serveCmd)
	serveCmd.Flags().DurationVar(&interval, "interval", 50*time.Millisecond, "tick interval")
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	interactionsCmd := &cobra.Command{
		Use:   "interactions [molecule]",
		Short: "detect non-bonded interactions in a builtin molecule",
		Args:  cobra.ExactArgs(1),
		RunE:  runInteractions,
	}

	designCmd := &cobra.Command{
		Use:   "design",
		Short: "generate candidate molecules with drug-likeness scores",
		RunE:  runDesign,
	}
	designCmd.Flags().IntVar(&count, "count", 5, "number of candidates")
	designCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list run presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, serveCmd, interactionsCmd, designCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&molecule, "molecule", "water-dimer", "builtin molecule name")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "time step (fs)")
	cmd.Flags().Float64Var(&targetTemp, "temp", config.DefaultTargetTemp, "target temperature (K)")
	cmd.Flags().Float64Var(&cutoff, "cutoff", config.DefaultCutoff, "cutoff radius (Å)")
	cmd.Flags().Float64Var(&tau, "tau", config.DefaultTau, "thermostat relaxation time")
	cmd.Flags().StringVar(&thermostat, "thermostat", "berendsen", "thermostat (none|berendsen)")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
}

// resolveConfig merges preset or config file with explicitly set flags
// and validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case preset != "":
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (see 'moldyn presets')", preset)
		}
		cp := *p
		cfg = &cp
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		cfg = config.DefaultConfig()
	}

	fl := cmd.Flags()
	if fl.Changed("molecule") {
		cfg.Molecule = molecule
	}
	if fl.Changed("dt") {
		cfg.Dt = dt
	}
	if fl.Changed("temp") {
		cfg.TargetTemp = targetTemp
	}
	if fl.Changed("cutoff") {
		cfg.Cutoff = cutoff
	}
	if fl.Changed("tau") {
		cfg.Tau = tau
	}
	if fl.Changed("thermostat") {
		cfg.Thermostat = thermostat
	}
	if fl.Changed("steps") {
		cfg.Steps = steps
	}
	if fl.Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// stdLogger routes engine logs to the standard logger when --verbose is
// set.
type stdLogger struct{}

func (stdLogger) Debugf(format string, v ...any) { log.Printf("DEBUG "+format, v...) }
func (stdLogger) Infof(format string, v ...any)  { log.Printf("INFO "+format, v...) }
func (stdLogger) Warnf(format string, v ...any)  { log.Printf("WARN "+format, v...) }
func (stdLogger) Errorf(format string, v ...any) { log.Printf("ERROR "+format, v...) }
