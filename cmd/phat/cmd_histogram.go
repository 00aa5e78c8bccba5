package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/phat/hist"
	"github.com/katalvlaran/phat/internal/report"
	"github.com/katalvlaran/phat/surprisal"
	"github.com/katalvlaran/phat/trajectory"
)

const (
	byFundamental = "fundamental"
	byLoopErasure = "loop-erasure"
)

func newHistogramCmd(a *app) *cobra.Command {
	var flags struct {
		by     string
		strict bool
	}

	cmd := &cobra.Command{
		Use:   "histogram DATASET",
		Short: "Aggregate trajectories into a weighted pathway histogram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, g, err := a.load(args[0])
			if err != nil {
				return err
			}
			classify, err := classifierFor(flags.by, g)
			if err != nil {
				return err
			}
			weights := ds.Weights
			if weights == nil {
				weights = make([]float64, len(ds.Trajectories))
				for i := range weights {
					weights[i] = 1
				}
			}

			h, skipped, err := fillParallel(cmd.Context(), a, classify, ds.Trajectories, weights, flags.strict)
			if err != nil {
				return err
			}
			if skipped > 0 {
				a.logger.Warn("trajectories left out of histogram", "skipped", skipped)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Histogram(a.mode, h))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.by, "by", byFundamental, "classifier: fundamental or loop-erasure")
	f.BoolVar(&flags.strict, "strict", false, "fail on the first trajectory that cannot be classified")

	return cmd
}

func classifierFor(by string, g *surprisal.Graph[string]) (hist.Classifier[[]string, string], error) {
	switch by {
	case byFundamental:
		return surprisal.FundamentalSequenceClassifier(g), nil
	case byLoopErasure:
		return trajectory.LoopErasureClassifier[string](), nil
	default:
		return nil, fmt.Errorf("unknown classifier %q (want %s or %s)", by, byFundamental, byLoopErasure)
	}
}

// fillParallel splits trajs into contiguous chunks, fills one histogram per
// worker and merges them in chunk order, so the result equals a sequential
// fill. Unclassifiable trajectories are skipped unless strict is set.
func fillParallel(
	ctx context.Context,
	a *app,
	classify hist.Classifier[[]string, string],
	trajs [][]string,
	weights []float64,
	strict bool,
) (*hist.PathwayHistogram[[]string, string], int, error) {
	workers := a.cfg.Workers
	if workers > len(trajs) {
		workers = max(len(trajs), 1)
	}
	chunk := (len(trajs) + workers - 1) / workers

	parts := make([]*hist.PathwayHistogram[[]string, string], workers)
	skipped := make([]int, workers)

	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := min(w*chunk, len(trajs))
		hi := min(lo+chunk, len(trajs))
		eg.Go(func() error {
			h, err := hist.NewPathwayHistogram(classify)
			if err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				if err = egCtx.Err(); err != nil {
					return err
				}
				err = h.Add(trajs[i], weights[i])
				if err == nil {
					continue
				}
				if strict || !errors.Is(err, hist.ErrClassify) {
					return fmt.Errorf("trajectory %d: %w", i+1, err)
				}
				skipped[w]++
				a.logger.Debug("trajectory skipped", "trajectory", i+1, "worker", w, "error", err)
			}
			parts[w] = h
			a.logger.Debug("worker done", "worker", w, "from", lo+1, "to", hi, "classes", h.Len())
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	out, err := hist.NewPathwayHistogram(classify)
	if err != nil {
		return nil, 0, err
	}
	total := 0
	for w, part := range parts {
		out.Merge(part)
		total += skipped[w]
	}

	return out, total, nil
}
