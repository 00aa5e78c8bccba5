package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path between source and target")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath – if true, return the predecessor map; otherwise Prev is nil.
type Options struct {
	ReturnPath bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns Options without a predecessor map.
func DefaultOptions() Options {
	return Options{}
}

// Result is the outcome of a single-source run.
//
// Dist maps every vertex of the graph to its distance from the source
// (+Inf when unreachable). Prev, present only with WithReturnPath, maps each
// reached non-source vertex to its predecessor on the chosen shortest path.
type Result[N comparable] struct {
	Source N
	Dist   map[N]float64
	Prev   map[N]N
}

// PathTo walks Prev back from target. It requires WithReturnPath.
// Returns ErrNoPath when target was not reached.
func (r *Result[N]) PathTo(target N) ([]N, error) {
	d, ok := r.Dist[target]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, target)
	}
	if math.IsInf(d, 1) {
		return nil, fmt.Errorf("%w: %v→%v", ErrNoPath, r.Source, target)
	}
	if r.Prev == nil {
		return nil, errors.New("dijkstra: PathTo requires WithReturnPath")
	}
	path := []N{target}
	for cur := target; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
