package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foreverfine77/ComplexAnalyzer/src/analysis"
)

func statsCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Parse complex numbers and print summary statistics",
		Long: `Reads free-form text from a file (or stdin), extracts every complex
literal it contains and prints the count, mean, variance and extents.
Tokens that are not complex literals are skipped silently.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			text, err := readInput(path)
			if err != nil {
				return err
			}
			pts, sum := analysis.SummarizeText(text)
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			}
			if len(pts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), noValuesMsg)
				return nil
			}
			printSummary(cmd.OutOrStdout(), sum)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the summary as JSON")
	return cmd
}
