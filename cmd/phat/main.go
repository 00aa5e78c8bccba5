// Command phat builds surprisal graphs, loop erasures, fundamental
// sequences and pathway histograms from YAML datasets.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
