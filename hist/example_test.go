package hist_test

import (
	"fmt"

	"github.com/katalvlaran/phat/hist"
)

func ExamplePathwayHistogram_Fill() {
	h, _ := hist.NewPathwayHistogram(hist.Infallible(func(p []string) string {
		return p[len(p)-1]
	}))
	_ = h.Fill([][]string{{"a", "b"}, {"a", "c"}, {"b", "c"}}, []float64{1, 2, 3}, true)

	for _, c := range h.Classes() {
		ws, _ := h.Data().Get(c)
		fmt.Println(c, ws.Len(), ws.TotalWeight())
	}
	// Output:
	// b 1 1
	// c 2 5
}
