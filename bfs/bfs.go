// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/phat/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[N comparable] struct {
	id    N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	graph   *core.Graph[N]
	opts    Options[N]
	queue   []queueItem[N]
	visited map[N]bool
	res     *Result[N]
}

// BFS runs breadth-first search on g starting from start, following edges
// in their direction (From → To) and applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input, or any
// OnVisit hook error.
func BFS[N comparable](g *core.Graph[N], start N, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker[N]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[N], 0, n),
		visited: make(map[N]bool, n),
		res: &Result[N]{
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d and adds it to the queue.
func (w *walker[N]) enqueue(v N, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem[N]{id: v, depth: d})
}

// loop processes the queue until empty or error.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		visit := Visit[N]{Vertex: item.id, Depth: item.depth}
		if item.depth > 0 {
			visit.Parent = w.res.Parent[item.id]
		}
		if err := w.opts.OnVisit(visit); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues each unseen out-neighbor of item.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) error {
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: failed to get neighbors of %v: %w", item.id, err)
	}
	nextDepth := item.depth + 1
	for _, e := range edges {
		if !w.visited[e.To] {
			w.res.Parent[e.To] = item.id
			w.enqueue(e.To, nextDepth)
		}
	}

	return nil
}
