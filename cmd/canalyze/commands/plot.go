package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/foreverfine77/ComplexAnalyzer/src/cnum"
	"github.com/foreverfine77/ComplexAnalyzer/src/render"
)

func plotCmd() *cobra.Command {
	var (
		out    string
		width  int
		height int
		margin int
		dot    float64
		title  string
		svg    bool
		noMean bool
		footer bool
	)
	cmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "Render the parsed values as a scatter chart",
		Long: `Reads free-form text from a file (or stdin), parses the complex literals
and writes a scatter chart of them. The output format is PNG unless --svg is
given or the output path ends in .svg. The mean of the set is overlaid as a
separate marker unless --no-mean is given.`,
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
			pts := cnum.SplitAndParse(text)
			if len(pts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), noValuesMsg+"; nothing to plot")
				return nil
			}

			opts := render.Options{
				Width:      width,
				Height:     height,
				Margin:     margin,
				DotWidth:   dot,
				Title:      title,
				ShowMean:   !noMean,
				ShowLegend: !noMean,
				Footer:     footer,
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()

			if svg || strings.EqualFold(filepath.Ext(out), ".svg") {
				err = render.WriteSVG(f, pts, opts)
			} else {
				err = render.WritePNG(f, pts, opts)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d points)\n", out, len(pts))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "scatter.png", "output file")
	cmd.Flags().IntVar(&width, "width", render.DefaultWidth, "chart width in pixels")
	cmd.Flags().IntVar(&height, "height", render.DefaultHeight, "chart height in pixels")
	cmd.Flags().IntVar(&margin, "margin", render.DefaultMargin, "outer chart padding in pixels")
	cmd.Flags().Float64Var(&dot, "dot", render.DefaultDotWidth, "point marker width")
	cmd.Flags().StringVar(&title, "title", "", "chart title")
	cmd.Flags().BoolVar(&svg, "svg", false, "write SVG instead of PNG")
	cmd.Flags().BoolVar(&noMean, "no-mean", false, "omit the mean marker")
	cmd.Flags().BoolVar(&footer, "footer", false, "stamp the summary onto the PNG")
	return cmd
}
