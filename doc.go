// Package phat is a toolkit for pathway analysis of Markov-chain
// trajectories: it turns a transition matrix into a surprisal graph,
// reduces trajectories to their fundamental sequences and aggregates them
// into weighted pathway histograms.
//
// 🚀 What is inside?
//
//	• matrix/     — dense float64 matrices, validators, element-wise kernels
//	• core/       — generic directed weighted graph and subgraph views
//	• bfs/        — breadth-first search over core graphs
//	• dijkstra/   — single-source shortest paths with reproducible ties
//	• markov/     — stochastic and reversibility checks, stationary distributions
//	• trajectory/ — loop erasure, traversed transitions, path keys
//	• surprisal/  — surprisal graph builder and fundamental sequences
//	• hist/       — WeightedSample and PathwayHistogram
//	• metrics/    — symmetric-difference cardinality, Hausdorff distance
//	• cmd/phat    — command-line front end over YAML datasets
//
// ✨ Quick start:
//
//	T, _ := matrix.NewDenseFromRows([][]float64{
//		{0.5, 0.5, 0},
//		{0.25, 0.5, 0.25},
//		{0, 0.5, 0.5},
//	})
//	g, _ := surprisal.New(T)                         // symmetrized by default
//	fs, _ := g.FundamentalSequence([]int{0, 1, 0, 1, 2}) // [0 1 2]
//
//	h, _ := hist.NewPathwayHistogram(surprisal.FundamentalSequenceClassifier(g))
//	_ = h.Fill(trajectories, nil, true)
//
// Library packages never log and never panic on user input; every failure
// is a sentinel error matched with errors.Is. The structures carry no locks:
// fill one histogram per goroutine and combine them with Merge.
package phat
