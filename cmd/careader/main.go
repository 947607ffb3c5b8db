// Command careader reports how much of a text file actually parses as
// complex literals. The splitter drops bad tokens silently; this shows them.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/foreverfine77/ComplexAnalyzer/src/analysis"
	"github.com/foreverfine77/ComplexAnalyzer/src/cnum"
)

func main() {
	var file string
	var verbose bool
	flag.StringVar(&file, "file", "-", "input file, - for stdin")
	flag.BoolVar(&verbose, "v", false, "list every dropped token")
	flag.Parse()

	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tokens := cnum.Tokens(string(data))
	points := make([]cnum.Complex, 0, len(tokens))
	var dropped []string
	for _, tok := range tokens {
		if v, ok := cnum.Parse(tok); ok {
			points = append(points, v)
		} else {
			dropped = append(dropped, tok)
		}
	}
	fmt.Printf("Tokens: %d  parsed: %d  dropped: %d\n", len(tokens), len(points), len(dropped))
	if verbose {
		for _, tok := range dropped {
			fmt.Printf("dropped: %q\n", tok)
		}
	}
	if len(points) == 0 {
		return
	}
	sum := analysis.Summarize(points)
	fmt.Printf("Mean: %s  variance: %.6g  stddev: %.6g\n", sum.Mean, sum.Variance, sum.StdDev)
}
