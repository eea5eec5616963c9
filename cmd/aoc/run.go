package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/puzzles"
)

// solveFlags select one puzzle.
type solveFlags struct {
	day   int
	part  int
	input string
}

func (s *solveFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&s.day, "day", "d", 0, "Day of Advent, a value 1 through 25")
	cmd.Flags().IntVarP(&s.part, "part", "p", 0, "Part of the day, either 1 or 2")
	cmd.Flags().StringVar(&s.input, "input", "", "Input file (default: <input-dir>/dayN.txt)")
}

func runSolve(cmd *cobra.Command, g *globalFlags, s *solveFlags) error {
	k := puzzles.Key{Day: s.day, Part: s.part}
	if err := k.Validate(); err != nil {
		return err
	}
	r, finish, err := g.runner(cmd)
	if err != nil {
		return err
	}
	runErr := r.Run(cmd.Context(), k, s.input)

	return errors.Join(runErr, finish())
}

func runCmd(g *globalFlags) *cobra.Command {
	var s solveFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve one puzzle",
		Example: `  aoc run -d 5 -p 2
  aoc run -d 8 -p 1 --input inputs/day8.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, g, &s)
		},
	}

	s.register(cmd)
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("part")

	return cmd
}
