package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/rokroskar/galpy/internal/analysis"
	"github.com/rokroskar/galpy/internal/config"
	"github.com/rokroskar/galpy/internal/export"
	"github.com/rokroskar/galpy/internal/potential"
	"github.com/rokroskar/galpy/internal/sim"
	"github.com/rokroskar/galpy/internal/storage"
	"github.com/rokroskar/galpy/internal/viz"
)

var (
	dataDir    string
	x, y       float64
	vx, vy     float64
	tStart     float64
	tStop      float64
	steps      int
	rtol, atol float64
	pots       []string
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "galpy",
		Short: "planar galactic orbit integration",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".galpy", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate an orbit",
		RunE:  runOrbit,
	}
	addRequestFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	potsCmd := &cobra.Command{
		Use:   "pots",
		Short: "list registered potential families",
		RunE:  listPotentials,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "integrate an orbit and replay it live",
		RunE:  runLive,
	}
	addRequestFlags(liveCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "radial frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	svgCmd := &cobra.Command{
		Use:   "export-svg [run_id] [file]",
		Short: "export run trajectory to SVG",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, potsCmd, liveCmd, analyzeCmd, svgCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&x, "x", 1.0, "initial x")
	cmd.Flags().Float64Var(&y, "y", 0.0, "initial y")
	cmd.Flags().Float64Var(&vx, "vx", 0.0, "initial vx")
	cmd.Flags().Float64Var(&vy, "vy", 1.0, "initial vy")
	cmd.Flags().Float64Var(&tStart, "start", 0.0, "initial time")
	cmd.Flags().Float64Var(&tStop, "stop", 10.0, "final time")
	cmd.Flags().IntVar(&steps, "steps", 100, "output intervals")
	cmd.Flags().Float64Var(&rtol, "rtol", config.DefaultRtol, "relative tolerance")
	cmd.Flags().Float64Var(&atol, "atol", config.DefaultAtol, "absolute tolerance")
	cmd.Flags().StringSliceVar(&pots, "pot", []string{"0:1.0,0.0"},
		"potential as type:param,param (repeatable)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
}

// buildRequest merges the config file (if given) with the flags;
// explicitly set flags win.
func buildRequest(cmd *cobra.Command) (sim.Request, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return sim.Request{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("x") {
		cfg.State.X = x
	}
	if cmd.Flags().Changed("y") {
		cfg.State.Y = y
	}
	if cmd.Flags().Changed("vx") {
		cfg.State.VX = vx
	}
	if cmd.Flags().Changed("vy") {
		cfg.State.VY = vy
	}
	if cmd.Flags().Changed("start") {
		cfg.Times.Start = tStart
	}
	if cmd.Flags().Changed("stop") {
		cfg.Times.Stop = tStop
	}
	if cmd.Flags().Changed("steps") {
		cfg.Times.Steps = steps
	}
	if cmd.Flags().Changed("rtol") {
		cfg.Rtol = rtol
	}
	if cmd.Flags().Changed("atol") {
		cfg.Atol = atol
	}
	if cmd.Flags().Changed("pot") || configFile == "" {
		parsed, err := parsePotentials(pots)
		if err != nil {
			return sim.Request{}, err
		}
		cfg.Potentials = parsed
	}

	return cfg.Request()
}

func parsePotentials(specs []string) ([]config.PotentialConfig, error) {
	out := make([]config.PotentialConfig, 0, len(specs))
	for _, spec := range specs {
		code, rest, found := strings.Cut(spec, ":")
		typeCode, err := strconv.Atoi(strings.TrimSpace(code))
		if err != nil {
			return nil, fmt.Errorf("bad potential spec %q: %v", spec, err)
		}
		var params []float64
		if found && rest != "" {
			for _, field := range strings.Split(rest, ",") {
				val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
				if err != nil {
					return nil, fmt.Errorf("bad potential spec %q: %v", spec, err)
				}
				params = append(params, val)
			}
		}
		out = append(out, config.PotentialConfig{Type: typeCode, Params: params})
	}
	return out, nil
}

func runOrbit(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Println("integrating orbit...")
	start := time.Now()

	result, err := sim.New().Integrate(req)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(req, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.States))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
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
	fmt.Fprintln(w, "ID\tTIME\tPOTENTIALS\tSAMPLES\tRTOL\tATOL")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%v\t%d\t%.1e\t%.1e\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Potentials,
			run.Samples,
			run.Rtol,
			run.Atol,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(states))
	fmt.Print(viz.TrajectoryPlots(states, times))
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

func listPotentials(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tPARAMS")
	for _, code := range potential.Codes() {
		d, err := potential.Lookup(code)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%d\n", code, d.Name, d.NArgs)
	}
	return w.Flush()
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(states) < 2 {
		return fmt.Errorf("not enough samples to analyze")
	}

	fmt.Printf("radial frequency analysis: %s\n\n", meta.ID)

	ps := analysis.RadialSpectrum(states)
	plotData := ps
	if len(ps) >= 8 {
		plotData = ps[:len(ps)/4]
	}
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum of R(t)"),
	)
	fmt.Println(graph)
	fmt.Println()

	duration := times[len(times)-1] - times[0]
	var freq float64
	if duration > 0 {
		freq = analysis.DominantFrequency(ps, float64(len(times)-1)/duration)
	}
	if freq > 0 {
		fmt.Printf("dominant radial frequency: %.4f\n", freq)
		fmt.Printf("radial period: %.4f\n", 1.0/freq)
	} else {
		fmt.Println("no radial oscillation detected")
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	states, _, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if err := export.WriteOrbitSVG(args[1], states, 800, 800); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	result, err := sim.New().Integrate(req)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewLive(result))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
