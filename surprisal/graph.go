package surprisal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/phat/core"
	"github.com/katalvlaran/phat/markov"
	"github.com/katalvlaran/phat/matrix"
)

// Graph is a surprisal graph over state labels of type N.
//
// The zero value is not a valid graph; use New or NewLabeled.
type Graph[N comparable] struct {
	g           *core.Graph[N]
	symmetrized bool
}

// New builds a surprisal graph over the integer states 0..n-1 of T.
func New(T matrix.Matrix, opts ...Option) (*Graph[int], error) {
	var n int
	if matrix.ValidateNotNil(T) == nil {
		n = T.Rows()
	}
	nodes := make([]int, n)
	for i := range nodes {
		nodes[i] = i
	}

	return NewLabeled(T, nodes, opts...)
}

// NewLabeled builds a surprisal graph whose i-th state is labeled nodes[i].
//
// Steps:
//  1. T must be a finite square row-stochastic matrix (ErrInvalidMatrix).
//  2. nodes must hold exactly one unique label per state (ErrNodeCountMismatch).
//  3. Symmetrized mode requires a reversible T (ErrNotReversible) and uses
//     W = T ⊙ Tᵀ; otherwise W = T. W is always a private copy.
//  4. The diagonal of W is zeroed.
//  5. Every W(i,j) > 0 becomes the edge nodes[i]→nodes[j] with weight
//     −log W(i,j), inserted in row-major order. Every label is a node even
//     when isolated.
//
// T is never modified.
func NewLabeled[N comparable](T matrix.Matrix, nodes []N, opts ...Option) (*Graph[N], error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 1) Matrix validation
	if err := markov.ValidateTransitionMatrix(T, cfg.tol); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	n := T.Rows()

	// 2) Labels
	if len(nodes) != n {
		return nil, fmt.Errorf("%w: %d labels for %d states", ErrNodeCountMismatch, len(nodes), n)
	}
	seen := make(map[N]struct{}, n)
	for _, v := range nodes {
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: duplicate label %v", ErrNodeCountMismatch, v)
		}
		seen[v] = struct{}{}
	}

	// 3) Weight basis
	W, err := weightBasis(T, cfg)
	if err != nil {
		return nil, err
	}

	// 4) No self-loops
	if err = matrix.ZeroDiagonal(W); err != nil {
		return nil, err
	}

	// 5) Edges
	rows, err := matrix.ToRows(W)
	if err != nil {
		return nil, err
	}
	g := core.NewGraph[N]()
	for _, v := range nodes {
		g.AddVertex(v)
	}
	for i, row := range rows {
		for j, w := range row {
			if w <= 0 {
				continue
			}
			if err = g.AddEdge(nodes[i], nodes[j], surprisalOf(w)); err != nil {
				return nil, err
			}
		}
	}

	return &Graph[N]{g: g, symmetrized: cfg.symmetrized}, nil
}

func weightBasis(T matrix.Matrix, cfg options) (matrix.Matrix, error) {
	if !cfg.symmetrized {
		return T.Clone(), nil
	}
	if err := markov.ValidateReversible(T, cfg.tol); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotReversible, err)
	}
	Tt, err := matrix.Transpose(T)
	if err != nil {
		return nil, err
	}

	return matrix.Hadamard(T, Tt)
}

// surprisalOf returns −log w clamped at 0; w may exceed 1 by rounding.
func surprisalOf(w float64) float64 {
	s := -math.Log(w)
	if s <= 0 {
		return 0
	}

	return s
}

// Symmetrized reports whether the graph was built from T ⊙ Tᵀ.
func (g *Graph[N]) Symmetrized() bool { return g.symmetrized }

// Nodes returns the state labels in matrix order.
func (g *Graph[N]) Nodes() []N { return g.g.Vertices() }

// HasNode reports whether v is a state label of the graph.
func (g *Graph[N]) HasNode(v N) bool { return g.g.HasVertex(v) }

// Surprisal returns the weight of x→y and whether that edge exists.
func (g *Graph[N]) Surprisal(x, y N) (float64, bool) { return g.g.Weight(x, y) }

// Edges returns all edges in row-major matrix order.
func (g *Graph[N]) Edges() []core.Edge[N] { return g.g.Edges() }

// EdgeCount returns the number of directed edges.
func (g *Graph[N]) EdgeCount() int { return g.g.EdgeCount() }

// Core exposes the underlying graph. Callers must treat it as read-only.
func (g *Graph[N]) Core() *core.Graph[N] { return g.g }

// FundamentalSequence is shorthand for FundamentalSequence(g, dtraj).
func (g *Graph[N]) FundamentalSequence(dtraj []N) ([]N, error) {
	return FundamentalSequence(g, dtraj)
}
