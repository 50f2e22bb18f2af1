package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/spikesim/internal/analysis"
	"github.com/san-kum/spikesim/internal/config"
	"github.com/san-kum/spikesim/internal/experiment"
	"github.com/san-kum/spikesim/internal/neuro"
	"github.com/san-kum/spikesim/internal/storage"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	size       int
	current    float64
	seed       int64
	integrator string
	synapse    string
	delay      float64
	weight     float64
	configFile string
	preset     string

	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spikesim",
		Short: "spiking neuron and synapse model lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".spikesim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (ms)")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (ms)")
	runCmd.Flags().IntVar(&size, "size", config.DefaultSize, "units in the group")
	runCmd.Flags().Float64Var(&current, "current", config.DefaultCurrent, "injected current")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().StringVar(&integrator, "integrator", "expeuler", "integration scheme (euler, expeuler)")
	runCmd.Flags().StringVar(&synapse, "synapse", "", "project onto a second group via this synapse model")
	runCmd.Flags().Float64Var(&delay, "delay", 0, "synaptic delay (ms)")
	runCmd.Flags().Float64Var(&weight, "weight", 0, "synaptic weight (0 = model default)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot recorded traces",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "benchmark model",
		Args:  cobra.ExactArgs(1),
		RunE:  benchModel,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [model] [param]",
		Short: "sweep a parameter and report the run metrics at each value",
		Args:  cobra.ExactArgs(2),
		RunE:  sweepParam,
	}
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "first sweep value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 20, "last sweep value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 11, "number of sweep values")
	sweepCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration per run (ms)")

	statsCmd := &cobra.Command{
		Use:   "stats [run_id]",
		Short: "spike-train and spectrum statistics for a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  statsRun,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, presetsCmd, benchCmd, sweepCmd, statsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = model

	if preset != "" {
		pc := config.GetPreset(model, preset)
		if pc == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		*cfg = *pc
	}

	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *fc
		cfg.Model = model
	}

	// CLI flags override preset and file values.
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("size") {
		cfg.Size = size
	}
	if cmd.Flags().Changed("current") {
		cfg.Current = current
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("synapse") {
		cfg.Synapse.Model = synapse
	}
	if cmd.Flags().Changed("delay") {
		cfg.Synapse.Delay = delay
	}
	if cmd.Flags().Changed("weight") {
		cfg.Synapse.Weight = weight
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sim, err := experiment.Build(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("running %s simulation...\n", cfg.Model)
	start := time.Now()

	result, err := sim.Net.Run(context.Background(), neuro.Config{
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
		Seed:     cfg.Seed,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Model:      cfg.Model,
		Seed:       cfg.Seed,
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		Integrator: cfg.Integrator,
		Size:       cfg.Size,
		Synapse:    cfg.Synapse.Model,
		Metrics:    result.Metrics,
	}, sim.Rec)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tDURATION\tDT\tINTEG\tSIZE\tSYNAPSE")

	for _, run := range runs {
		syn := run.Synapse
		if syn == "" {
			syn = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fms\t%.4fms\t%s\t%d\t%s\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
			run.Size,
			syn,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	header, _, rows, err := st.LoadTraces(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", len(rows))

	maxPlots := 6
	plotted := 0
	for col, name := range header {
		if plotted >= maxPlots {
			break
		}

		data := make([]float64, len(rows))
		for i := range rows {
			if col < len(rows[i]) {
				data[i] = rows[i][col]
			}
		}

		// Spike trains render poorly as line plots; report counts.
		if strings.Contains(name, ".spike[") {
			total := 0.0
			for _, v := range data {
				total += v
			}
			fmt.Printf("%s: %d spikes\n\n", name, int(total))
			continue
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
		plotted++
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func benchModel(cmd *cobra.Command, args []string) error {
	model := args[0]

	durations := []float64{10.0, 100.0}
	sizes := []int{1, 100, 1000}

	fmt.Printf("benchmarking %s\n\n", model)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tSIZE\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, n := range sizes {
			cfg := config.DefaultConfig()
			cfg.Model = model
			cfg.Size = n
			cfg.Duration = dur
			cfg.Integrator = "euler"
			cfg.Seed = 42
			cfg.Record = nil

			sim, err := experiment.Build(cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := sim.Net.Run(context.Background(), neuro.Config{
				Dt:       cfg.Dt,
				Duration: cfg.Duration,
				Seed:     cfg.Seed,
			})
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.Steps) / elapsed.Seconds()
			fmt.Fprintf(w, "%.0fms\t%d\t%d\t%v\t%.0f\n",
				dur, n, result.Steps, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}

func sweepParam(cmd *cobra.Command, args []string) error {
	model, param := args[0], args[1]

	base := config.DefaultConfig()
	base.Model = model
	base.Record = nil
	base.Seed = 42
	if model != "hh" {
		base.Integrator = "euler"
	}
	if cmd.Flags().Changed("time") {
		base.Duration = duration
	}

	sweep := &experiment.Sweep{
		Base:   base,
		Param:  param,
		Values: experiment.Range(sweepFrom, sweepTo, sweepSteps),
	}

	fmt.Printf("sweeping %s over %s in [%g, %g]\n\n", model, param, sweepFrom, sweepTo)
	points, err := sweep.Run(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tSPIKES\tRATE (Hz)\tSTABILITY\n", strings.ToUpper(param))
	rates := make([]float64, len(points))
	for i, p := range points {
		rates[i] = p.Metrics["firing_rate_hz"]
		fmt.Fprintf(w, "%g\t%.0f\t%.2f\t%.3f\n",
			p.Value,
			p.Metrics["spike_count"],
			p.Metrics["firing_rate_hz"],
			p.Metrics["stability"],
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(rates,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("firing rate (Hz) vs %s", param)),
	))
	return nil
}

func statsRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	header, _, rows, err := st.LoadTraces(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("run has no recorded traces")
	}

	fmt.Printf("run: %s (%s, dt=%.4fms)\n\n", meta.ID, meta.Model, meta.Dt)

	column := func(col int) []float64 {
		data := make([]float64, len(rows))
		for i := range rows {
			if col < len(rows[i]) {
				data[i] = rows[i][col]
			}
		}
		return data
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRAIN\tSPIKES\tMEAN ISI\tCV\tMIN\tMAX")
	trains := 0
	for col, name := range header {
		if !strings.Contains(name, ".spike[") {
			continue
		}
		trains++
		stats := analysis.IntervalStats(analysis.SpikeTimes(column(col), meta.Dt))
		fmt.Fprintf(w, "%s\t%d\t%.2fms\t%.3f\t%.2fms\t%.2fms\n",
			name, stats.Count, stats.Mean, stats.CV, stats.Min, stats.Max)
	}
	if trains > 0 {
		if err := w.Flush(); err != nil {
			return err
		}
	} else {
		fmt.Println("no spike trains recorded")
	}

	for col, name := range header {
		if !strings.Contains(name, ".V[") {
			continue
		}
		freqs, power := analysis.Spectrum(column(col), meta.Dt)
		if freqs == nil {
			continue
		}
		fmt.Printf("\n%s: dominant oscillation %.1f Hz\n", name, analysis.PeakFrequency(freqs, power))
		break
	}

	return nil
}
