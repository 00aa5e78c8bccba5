package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/phat/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// Unreachable vertices keep distance +Inf.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[N comparable](g *core.Graph[N], source N, opts ...Option) (*Result[N], error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	// 3) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	V := g.VertexCount()
	r := &runner[N]{
		g:       g,
		dist:    make(map[N]float64, V),
		visited: make(map[N]bool, V),
		pq:      make(nodePQ[N], 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[N]N, V)
	}

	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result[N]{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// ShortestPath returns the vertex sequence of a minimum-weight path from
// source to target together with its total weight. When source == target
// the path is [source] with cost 0.
//
// Among equal-cost paths the first one discovered wins (see package doc).
// Returns ErrNoPath when target is unreachable, plus every Dijkstra error.
func ShortestPath[N comparable](g *core.Graph[N], source, target N, opts ...Option) ([]N, float64, error) {
	if g != nil && !g.HasVertex(target) {
		return nil, 0, fmt.Errorf("%w: %v", ErrVertexNotFound, target)
	}
	res, err := Dijkstra(g, source, append(opts, WithReturnPath())...)
	if err != nil {
		return nil, 0, err
	}
	path, err := res.PathTo(target)
	if err != nil {
		return nil, 0, err
	}

	return path, res.Dist[target], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N comparable] struct {
	g       *core.Graph[N]
	dist    map[N]float64
	prev    map[N]N
	visited map[N]bool
	pq      nodePQ[N]
	seq     uint64 // push counter; orders equal-distance heap entries
}

// init sets dist[v] = +Inf for all v and pushes the source at distance 0.
func (r *runner[N]) init(source N) {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)
}

func (r *runner[N]) push(v N, d float64) {
	heap.Push(&r.pq, &nodeItem[N]{id: v, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly extracts the closest unsettled vertex and relaxes its
// outgoing edges, until the heap drains.
func (r *runner[N]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[N])
		u := item.id

		// Stale entry from lazy decrease-key.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves distances to the out-neighbors of the settled vertex u.
// Only strictly shorter candidates replace the current distance.
func (r *runner[N]) relax(u N) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %v: %w", u, err)
	}

	var newDist float64
	for _, e := range neighbors {
		if r.visited[e.To] {
			continue
		}
		newDist = r.dist[u] + e.Weight
		if newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.push(e.To, newDist)
	}

	return nil
}

// nodeItem is a heap entry: a vertex with a tentative distance.
type nodeItem[N comparable] struct {
	id   N
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ[N comparable] []*nodeItem[N]

func (pq nodePQ[N]) Len() int { return len(pq) }

func (pq nodePQ[N]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[N]) Push(x any) { *pq = append(*pq, x.(*nodeItem[N])) }

func (pq *nodePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
