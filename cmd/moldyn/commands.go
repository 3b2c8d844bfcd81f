package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/moldyn/internal/analysis"
	"github.com/san-kum/moldyn/internal/chem"
	"github.com/san-kum/moldyn/internal/config"
	"github.com/san-kum/moldyn/internal/designer"
	"github.com/san-kum/moldyn/internal/engine"
	"github.com/san-kum/moldyn/internal/interactions"
	"github.com/san-kum/moldyn/internal/notify"
	"github.com/san-kum/moldyn/internal/viz"
)

func engineOptions(extra ...engine.Option) []engine.Option {
	opts := extra
	if verbose {
		opts = append(opts, engine.WithLogger(stdLogger{}))
	}
	return opts
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	mol, err := chem.Builtin(cfg.Molecule)
	if err != nil {
		return err
	}

	provider := engine.NewStaticProvider(mol)
	sched := engine.NewManualScheduler()
	rec := analysis.NewRecorder(1)

	eng, err := engine.New(provider, sched, cfg.Params(),
		engineOptions(engine.WithObserver(rec))...)
	if err != nil {
		return err
	}

	if err := eng.Start(mol.ID); err != nil {
		return err
	}
	for i := 0; i < cfg.Steps; i++ {
		if !sched.Tick() {
			break
		}
	}
	if err := eng.Stop(); err != nil {
		return err
	}

	printSummary(cfg, mol, rec, eng.Snapshot())
	return nil
}

func printSummary(cfg *config.Config, mol *chem.Molecule, rec *analysis.Recorder, snap engine.Snapshot) {
	temps := rec.Temperatures()
	totals := rec.TotalEnergies()

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "molecule\t%s (%d atoms)\n", mol.Name, len(mol.Atoms))
	fmt.Fprintf(w, "steps\t%d (dt %.2f fs, total %.1f fs)\n", rec.Len(), cfg.Dt, snap.Time)
	fmt.Fprintf(w, "thermostat\t%s (target %.1f K)\n", cfg.Thermostat, cfg.TargetTemp)

	tStats := analysis.Stats(temps)
	fmt.Fprintf(w, "temperature\t%.1f ± %.1f K (min %.1f, max %.1f)\n",
		tStats.Mean, tStats.StdDev, tStats.Min, tStats.Max)
	fmt.Fprintf(w, "energy\tKE %.3f  PE %.3f  total %.3f kJ/mol\n",
		snap.Physics.Kinetic, snap.Physics.Potential, snap.Physics.Total)
	fmt.Fprintf(w, "energy drift\t%.4f%%\n", analysis.RelativeDrift(totals)*100)
	w.Flush()

	if len(temps) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(downsample(temps, 100),
			asciigraph.Height(10), asciigraph.Caption("temperature (K)")))
	}

	if len(snap.Interactions) > 0 {
		fmt.Println()
		printInteractions(snap.Interactions)
	}
}

func printInteractions(suggestions []interactions.Suggestion) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tATOMS\tDISTANCE\tSTRENGTH")
	for _, s := range suggestions {
		fmt.Fprintf(w, "%s\t%s–%s\t%.2f Å\t%.2f\n", s.Kind, s.AtomA, s.AtomB, s.Distance, s.Strength)
	}
	w.Flush()
}

func downsample(values []float64, max int) []float64 {
	if len(values) <= max {
		return values
	}
	out := make([]float64, max)
	for i := range out {
		out[i] = values[i*len(values)/max]
	}
	return out
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	mol, err := chem.Builtin(cfg.Molecule)
	if err != nil {
		return err
	}

	snaps := make(chan engine.Snapshot, 32)
	push := engine.ObserverFunc(func(snap engine.Snapshot) {
		select {
		case snaps <- snap:
		default:
		}
	})

	provider := engine.NewStaticProvider(mol)
	sched := engine.NewTimerScheduler(interval)

	eng, err := engine.New(provider, sched, cfg.Params(),
		engineOptions(engine.WithObserver(push))...)
	if err != nil {
		return err
	}

	if err := eng.Start(mol.ID); err != nil {
		return err
	}
	defer eng.Stop()

	return viz.Run(snaps)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	mol, err := chem.Builtin(cfg.Molecule)
	if err != nil {
		return err
	}

	broadcaster := notify.NewBroadcaster()
	defer broadcaster.Close()

	provider := engine.NewStaticProvider(mol)
	sched := engine.NewTimerScheduler(interval)

	eng, err := engine.New(provider, sched, cfg.Params(),
		engineOptions(engine.WithObserver(broadcaster))...)
	if err != nil {
		return err
	}

	if err := eng.Start(mol.ID); err != nil {
		return err
	}
	defer eng.Stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", broadcaster.Handler())

	server := &http.Server{Addr: addr, Handler: mux}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	go func() {
		<-stop
		server.Close()
	}()

	fmt.Printf("streaming %s on ws://%s/ws (ctrl-c to stop)\n", mol.Name, addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func runInteractions(cmd *cobra.Command, args []string) error {
	mol, err := chem.Builtin(args[0])
	if err != nil {
		return err
	}

	provider := engine.NewStaticProvider(mol)
	sched := engine.NewManualScheduler()
	eng, err := engine.New(provider, sched, config.DefaultConfig().Params(), engineOptions()...)
	if err != nil {
		return err
	}
	if err := eng.Start(mol.ID); err != nil {
		return err
	}
	snap := eng.Snapshot()
	eng.Stop()

	if len(snap.Interactions) == 0 {
		fmt.Println("no interactions detected")
		return nil
	}
	printInteractions(snap.Interactions)
	return nil
}

func runDesign(cmd *cobra.Command, args []string) error {
	d := designer.New(seed)
	candidates := d.Generate(count)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFORMULA\tMW\tLOGP\tLIKENESS\tMECHANISM")
	for _, c := range candidates {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.2f\t%.2f\t%s\n",
			c.Name, c.Formula, c.MolecularWeight, c.LogP, c.DrugLikeness, c.Mechanism)
	}
	w.Flush()

	fmt.Println()
	for _, c := range candidates {
		fmt.Printf("%s  %s\n", c.Name, c.SMILES)
		fmt.Printf("  advantages: %s\n", strings.Join(c.Advantages, ", "))
		fmt.Printf("  concerns:   %s\n", strings.Join(c.Concerns, ", "))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tMOLECULE\tTHERMOSTAT\tDT\tSTEPS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f fs\t%d\n", name, p.Molecule, p.Thermostat, p.Dt, p.Steps)
	}
	w.Flush()
	return nil
}
