package main

import (
	"github.com/spf13/cobra"
)

func listCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List solved puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := g.runner(cmd)
			if err != nil {
				return err
			}
			return r.List()
		},
	}
}
