// Package main provides the sspbench CLI: scaling sweeps and quick
// comparisons of the shortest-path algorithms in this repository.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BakdaurenNarbayev/BMSSP/bench"
	"github.com/BakdaurenNarbayev/BMSSP/builder"
	"github.com/BakdaurenNarbayev/BMSSP/config"
	"github.com/BakdaurenNarbayev/BMSSP/report"
)

var (
	configPath string
	jsonPath   string
	chartPath  string
	workers    int
)

var rootCmd = &cobra.Command{
	Use:   "sspbench",
	Short: "Benchmark single-source shortest-path algorithms",
	Long: `sspbench times Dijkstra, Bellman-Ford, and BMSSP on seeded
degree-bounded random graphs and reports how their median run times
scale with graph size.`,
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the configured scaling sweep and write JSON/HTML artifacts",
	RunE:  runSweep,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Time every algorithm once on a single graph and print a table",
	RunE:  runDemo,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "override JSON output path")
	runCmd.Flags().StringVar(&chartPath, "chart", "", "override HTML chart output path")
	runCmd.Flags().IntVar(&workers, "parallel", 1, "measure points concurrently (hurts timing comparability)")
	rootCmd.AddCommand(runCmd, demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration and installs the logger it names.
func loadConfig() (*config.Config, error) {
	var opts []config.LoaderOption
	if configPath != "" {
		opts = append(opts, config.WithFile(configPath))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}
	setupLogger(cfg.Log)

	return cfg, nil
}

func setupLogger(cfg config.Log) {
	var lvl slog.Level
	switch cfg.Level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func runSweep(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sweep, err := cfg.SweepConfig()
	if err != nil {
		return err
	}

	// SIGINT aborts between points; everything measured so far is kept.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	o, err := bench.NewOrchestrator(sweep,
		bench.WithLogger(slog.Default()), bench.WithParallel(workers))
	if err != nil {
		return err
	}

	results, runErr := o.Run(ctx)
	if runErr != nil {
		slog.Warn("sweep aborted, writing partial results", "err", runErr)
	}
	if len(results) == 0 {
		return fmt.Errorf("no results produced: %w", runErr)
	}

	if path := pick(jsonPath, cfg.Output.JSON); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := report.WriteJSON(f, results); err != nil {
			f.Close()

			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		slog.Info("results written", "path", path)
	}
	if path := pick(chartPath, cfg.Output.Chart); path != "" {
		if err := report.RenderChart(path, results); err != nil {
			return err
		}
		slog.Info("chart written", "path", path)
	}

	return runErr
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	n := cfg.Demo.Nodes
	target := int(cfg.Demo.EdgeRatio * float64(n))
	g, stats, err := builder.GenerateRandom(n, target,
		cfg.MaxInDegree, cfg.MaxOutDegree, cfg.Directed,
		builder.WithSeed(cfg.Seed))
	if err != nil {
		return err
	}
	slog.Info("demo graph generated",
		"nodes", n, "edges", stats.Placed, "truncated", stats.Truncated)

	algos, err := cfg.SweepConfig()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tMEDIAN\tTRIALS")
	for _, algo := range algos.Algorithms {
		res, err := bench.Measure(algo, g, 0, cfg.Demo.Trials)
		if err != nil {
			slog.Warn("demo point failed", "algorithm", algo.String(), "err", err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", algo, res.MedianTime, len(res.TrialTimes))
	}

	return tw.Flush()
}

// pick returns the flag override when set, the configured value
// otherwise.
func pick(flag, configured string) string {
	if flag != "" {
		return flag
	}

	return configured
}
