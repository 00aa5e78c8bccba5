package surprisal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/phat/core"
	"github.com/katalvlaran/phat/dijkstra"
	"github.com/katalvlaran/phat/trajectory"
)

// FundamentalSequence returns a minimum-total-surprisal path from dtraj's
// first state to its last, using only the edges dtraj traversed.
//
// Self-transitions are ignored and traversed pairs that are not edges of g
// are dropped. When the restricted graph holds no such path, including when
// an endpoint never appears in a retained edge, the error wraps
// ErrNoPathFound. A trajectory that starts and ends on a node of the
// restricted graph without moving away from it returns the one-node path.
//
// Errors: ErrNotSurprisalGraph, ErrEmptyTrajectory, ErrNoPathFound.
func FundamentalSequence[N comparable](g *Graph[N], dtraj []N) ([]N, error) {
	if g == nil || g.g == nil {
		return nil, ErrNotSurprisalGraph
	}
	if len(dtraj) == 0 {
		return nil, ErrEmptyTrajectory
	}

	// 1) Traversed transitions
	steps := trajectory.Transitions(dtraj)
	keep := make([]core.Pair[N], len(steps))
	for i, s := range steps {
		keep[i] = core.Pair[N]{From: s.From, To: s.To}
	}

	// 2) Edge-induced subgraph
	sub := core.EdgeSubgraph(g.g, keep)

	// 3) Shortest path
	src, dst := dtraj[0], dtraj[len(dtraj)-1]
	path, _, err := dijkstra.ShortestPath(sub, src, dst)
	if err != nil {
		if errors.Is(err, dijkstra.ErrVertexNotFound) || errors.Is(err, dijkstra.ErrNoPath) {
			return nil, fmt.Errorf("%w: %v→%v: %w", ErrNoPathFound, src, dst, err)
		}
		return nil, err
	}

	return path, nil
}

// FundamentalSequenceClassifier returns a classifier keying a trajectory by
// the trajectory.Key of its fundamental sequence in g. Extraction failures
// are returned unchanged.
func FundamentalSequenceClassifier[N comparable](g *Graph[N]) func([]N) (string, error) {
	return func(dtraj []N) (string, error) {
		fs, err := FundamentalSequence(g, dtraj)
		if err != nil {
			return "", err
		}
		return trajectory.Key(fs), nil
	}
}
