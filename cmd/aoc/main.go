// Package main is the entry point for the aoc CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		g globalFlags
		s solveFlags
	)

	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2023 solutions",
		Long: `Solve one Advent of Code 2023 puzzle and print its answer.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (--env-file, default .env, skipped when missing)
  3. Environment variables
  4. Command line flags

Environment variables:
  AOC_INPUT_DIR    Directory holding dayN.txt inputs (default: inputs)
  AOC_LOG_LEVEL    DEBUG, INFO, WARN, ERROR (default: WARN)
  AOC_LOG_FORMAT   text or json (default: text)
  AOC_WORKERS      Concurrent resolutions and walks (default: 4)
  AOC_MAX_STEPS    Step limit for one graph walk, 0 derives it (default: 0)
  AOC_METRICS      Dump run metrics to stderr (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("day") && !cmd.Flags().Changed("part") {
				return cmd.Help()
			}
			return runSolve(cmd, &g, &s)
		},
	}

	g.register(cmd)
	s.register(cmd)

	cmd.AddCommand(runCmd(&g))
	cmd.AddCommand(listCmd(&g))
	cmd.AddCommand(verifyCmd(&g))
	cmd.AddCommand(versionCmd())

	return cmd
}
