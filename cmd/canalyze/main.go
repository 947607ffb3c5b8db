package main

import (
	"os"

	"github.com/foreverfine77/ComplexAnalyzer/cmd/canalyze/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
