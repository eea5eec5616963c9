package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/internal/cli"
	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/logging"
	"github.com/katalvlaran/aoc2023/internal/metrics"
	"github.com/katalvlaran/aoc2023/puzzles"
)

// globalFlags are shared by every command.
type globalFlags struct {
	envFile  string
	inputDir string
	logLevel string
	workers  int
	maxSteps int64
	metrics  bool
}

func (g *globalFlags) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&g.envFile, "env-file", "", "Path to .env file (default: .env)")
	f.StringVar(&g.inputDir, "input-dir", "", "Directory holding dayN.txt inputs")
	f.StringVar(&g.logLevel, "log-level", "", "Log level: DEBUG, INFO, WARN, ERROR")
	f.IntVar(&g.workers, "workers", 0, "Concurrent resolutions and walks")
	f.Int64Var(&g.maxSteps, "max-steps", 0, "Step limit for one graph walk (0 derives it)")
	f.BoolVar(&g.metrics, "metrics", false, "Dump run metrics to stderr")
}

// config loads the configuration and applies explicitly set flags over it.
func (g *globalFlags) config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(g.envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	f := cmd.Flags()
	if f.Changed("input-dir") {
		cfg.InputDir = g.inputDir
	}
	if f.Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
	if f.Changed("workers") {
		cfg.Workers = g.workers
	}
	if f.Changed("max-steps") {
		cfg.MaxSteps = g.maxSteps
	}
	if f.Changed("metrics") {
		cfg.Metrics = g.metrics
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// runner builds a cli.Runner and a finish func that dumps metrics when enabled.
func (g *globalFlags) runner(cmd *cobra.Command) (*cli.Runner, func() error, error) {
	cfg, err := g.config(cmd)
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	rec := metrics.New()
	r := &cli.Runner{
		Registry: puzzles.Default(puzzles.Settings{
			Workers:  cfg.Workers,
			MaxSteps: cfg.MaxSteps,
			Logger:   log,
		}),
		Metrics:  rec,
		Logger:   log,
		InputDir: cfg.InputDir,
		Out:      cmd.OutOrStdout(),
	}
	finish := func() error {
		if !cfg.Metrics {
			return nil
		}
		return rec.WriteText(cmd.ErrOrStderr())
	}

	return r, finish, nil
}
