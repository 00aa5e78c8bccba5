package report

import (
	"fmt"

	"github.com/katalvlaran/phat/hist"
	"github.com/katalvlaran/phat/surprisal"
)

// Edges renders every edge of g with its surprisal.
func Edges[N comparable](m Mode, g *surprisal.Graph[N]) string {
	t := NewTable(m)
	t.Header("FROM", "TO", "SURPRISAL")
	for _, e := range g.Edges() {
		t.Row(e.From, e.To, fmt.Sprintf("%.6f", e.Weight))
	}
	t.Footer("", fmt.Sprintf("%d edges", g.EdgeCount()), "")
	t.AlignRight(3)

	return t.String()
}

// Sequence is one input trajectory and what became of it.
type Sequence struct {
	Input  string
	Output string
	Err    error
}

// Sequences renders a two-column input→output table. Failed rows show
// the error in the output column.
func Sequences(m Mode, outputTitle string, rows []Sequence) string {
	t := NewTable(m)
	t.Header("#", "TRAJECTORY", outputTitle)
	for i, r := range rows {
		out := r.Output
		if r.Err != nil {
			out = "error: " + r.Err.Error()
		}
		t.Row(i+1, r.Input, out)
	}

	return t.String()
}

// Histogram renders each class with its count, weight and probability.
func Histogram[T any, C comparable](m Mode, h *hist.PathwayHistogram[T, C]) string {
	t := NewTable(m)
	t.Header("CLASS", "COUNT", "WEIGHT", "PROBABILITY")

	probs, err := h.Probabilities()
	classes := h.Classes()
	count := 0
	for i, ws := range h.Blocks() {
		c := classes[i]
		p := "-"
		if err == nil {
			p = fmt.Sprintf("%.4f", probs[c])
		}
		t.Row(c, ws.Len(), fmt.Sprintf("%g", ws.TotalWeight()), p)
		count += ws.Len()
	}
	t.Footer("TOTAL", count, fmt.Sprintf("%g", h.TotalWeight()), "")
	t.AlignRight(2, 3, 4)

	return t.String()
}
