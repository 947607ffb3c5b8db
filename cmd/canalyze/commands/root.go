package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/foreverfine77/ComplexAnalyzer/src/analysis"
	"github.com/foreverfine77/ComplexAnalyzer/src/render"
)

const version = "0.4.1"

var logLevel string

func Execute() error {
	root := &cobra.Command{
		Use:   "canalyze",
		Short: "Statistics and scatter plots for pasted complex numbers",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			render.SetLogLevel(logLevel)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(statsCmd(), plotCmd(), replCmd(), versionCmd())
	return root.Execute()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "canalyze %s\n", version)
		},
	}
}

// readInput returns the text to analyze: the named file, or stdin when path
// is empty or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

func printSummary(w io.Writer, sum analysis.Summary) {
	fmt.Fprintf(w, "Points:   %d\n", sum.Count)
	fmt.Fprintf(w, "Mean:     %s\n", sum.Mean)
	fmt.Fprintf(w, "Variance: %.6g\n", sum.Variance)
	fmt.Fprintf(w, "Std dev:  %.6g\n", sum.StdDev)
	fmt.Fprintf(w, "Mean |z|: %.6g\n", sum.MeanAbs)
	fmt.Fprintf(w, "Re range: [%.6g, %.6g]\n", sum.MinRe, sum.MaxRe)
	fmt.Fprintf(w, "Im range: [%.6g, %.6g]\n", sum.MinIm, sum.MaxIm)
}

const noValuesMsg = "no complex numbers found in input"
