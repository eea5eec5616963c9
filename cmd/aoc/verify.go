package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/internal/answers"
)

func verifyCmd(g *globalFlags) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check answers against an answer book",
		Long: `Solve every puzzle listed in the answer book and compare the results.

The book is YAML:

  answers:
    - day: 5
      part: 1
      input: inputs/day5.txt   # optional
      want: 35`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := answers.Load(path)
			if err != nil {
				return err
			}
			r, finish, err := g.runner(cmd)
			if err != nil {
				return err
			}
			return errors.Join(r.Verify(cmd.Context(), book), finish())
		},
	}

	cmd.Flags().StringVar(&path, "answers", "answers.yaml", "Answer book")

	return cmd
}
