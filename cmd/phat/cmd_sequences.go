package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phat/internal/dataset"
	"github.com/katalvlaran/phat/internal/report"
	"github.com/katalvlaran/phat/trajectory"
)

func newEraseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "erase DATASET",
		Short: "Print the loop erasure of every trajectory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			rows := make([]report.Sequence, len(ds.Trajectories))
			for i, tr := range ds.Trajectories {
				rows[i] = report.Sequence{Input: trajectory.Key(tr), Output: trajectory.Key(trajectory.EraseLoops(tr))}
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Sequences(a.mode, "LOOP ERASURE", rows))
			return nil
		},
	}
}

func newFundamentalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fundamental DATASET",
		Short: "Print the fundamental sequence of every trajectory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, g, err := a.load(args[0])
			if err != nil {
				return err
			}
			rows := make([]report.Sequence, len(ds.Trajectories))
			failed := 0
			for i, tr := range ds.Trajectories {
				rows[i].Input = trajectory.Key(tr)
				fs, err := g.FundamentalSequence(tr)
				if err != nil {
					failed++
					rows[i].Err = err
					a.logger.Warn("no fundamental sequence", "trajectory", i+1, "error", err)
					continue
				}
				rows[i].Output = trajectory.Key(fs)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Sequences(a.mode, "FUNDAMENTAL SEQUENCE", rows))
			if failed > 0 {
				a.logger.Info("fundamental sequences done", "ok", len(rows)-failed, "failed", failed)
			}
			return nil
		},
	}
}
