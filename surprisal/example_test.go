package surprisal_test

import (
	"fmt"

	"github.com/katalvlaran/phat/matrix"
	"github.com/katalvlaran/phat/surprisal"
)

func ExampleGraph_FundamentalSequence() {
	T, _ := matrix.NewDenseFromRows([][]float64{
		{0.5, 0.5, 0},
		{0.25, 0.5, 0.25},
		{0, 0.5, 0.5},
	})
	g, err := surprisal.NewLabeled(T, []string{"low", "mid", "high"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fs, err := g.FundamentalSequence([]string{"low", "mid", "low", "mid", "high"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(fs)
	// Output: [low mid high]
}
