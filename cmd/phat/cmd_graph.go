package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phat/internal/report"
)

func newGraphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "graph DATASET",
		Short: "Print the surprisal graph of a dataset's transition matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := a.load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Edges(a.mode, g))
			return nil
		},
	}
}
