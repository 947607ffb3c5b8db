package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/foreverfine77/ComplexAnalyzer/src/analysis"
	"github.com/foreverfine77/ComplexAnalyzer/src/render"
)

// demoInput feeds the screenshot renders when no input file is given.
const demoInput = `1+2i, 3-4i, 5+0i
-2.5+0.5i  -i  0.75+0.25i
2-3i, -1-1i, i, 4+1i`

// RunScreenshotsMode renders the documentation charts headlessly into outDir
// and returns without opening a window. inputPath optionally replaces the
// built-in demo values.
func RunScreenshotsMode(outDir, inputPath string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	text := demoInput
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		text = string(data)
	}
	points, sum := analysis.SummarizeText(text)
	if len(points) == 0 {
		return fmt.Errorf("no complex numbers found in input")
	}
	render.Infof("screenshots: %d value(s), mean %s", sum.Count, sum.Mean)

	const w, h = 1200, 700
	toRender := []struct {
		name string
		opts render.Options
	}{
		{"scatter_default.png", render.Options{Width: w, Height: h, Title: "Complex plane", ShowMean: true, ShowLegend: true}},
		{"scatter_footer.png", render.Options{Width: w, Height: h, Title: "Complex plane", ShowMean: true, ShowLegend: true, Footer: true}},
		{"scatter_plain.png", render.Options{Width: w, Height: h, Title: "Complex plane"}},
	}
	for _, shot := range toRender {
		img, err := render.Scatter(points, shot.opts)
		if err != nil {
			return fmt.Errorf("render %s: %w", shot.name, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encode %s: %w", shot.name, err)
		}
		outPath := filepath.Join(outDir, shot.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", shot.name, err)
		}
		render.Infof("wrote %s", outPath)
	}
	return nil
}
