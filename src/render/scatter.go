// Package render draws a parsed complex set as a scatter chart over the
// complex plane and encodes it to PNG or SVG.
//
// Dependency direction: render composes analysis (mean overlay, footer) and
// plotmap (window, ticks); the UI layers sit on top and never feed back in.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/foreverfine77/ComplexAnalyzer/src/analysis"
	"github.com/foreverfine77/ComplexAnalyzer/src/cnum"
	"github.com/foreverfine77/ComplexAnalyzer/src/plotmap"
)

const (
	// DefaultWidth and DefaultHeight are used when the caller passes zero
	// dimensions.
	DefaultWidth  = 900
	DefaultHeight = 600
	// DefaultMargin is the outer chart padding in pixels.
	DefaultMargin = 16
	// DefaultDotWidth is the point marker radius.
	DefaultDotWidth = 4

	// FooterStripPx is the extra bottom padding reserved for the summary
	// strip so it never covers the X axis labels.
	FooterStripPx = 18
)

// Options control one scatter rendering. The zero value is usable: defaults
// fill in dimensions and dot size, and all overlays stay off.
type Options struct {
	Width      int
	Height     int
	Margin     int
	DotWidth   float64
	Title      string
	ShowMean   bool // overlay the centroid marker
	ShowLegend bool // name the point and mean series under the plot
	Footer     bool // stamp n/mean/variance onto the PNG (raster only)
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Margin <= 0 {
		o.Margin = DefaultMargin
	}
	if o.DotWidth <= 0 {
		o.DotWidth = DefaultDotWidth
	}
	return o
}

// Scatter renders points as a PNG-backed image. The mean overlay shares the
// bounds window of the data series, so the marker lands exactly among its
// points at every size.
func Scatter(points []cnum.Complex, opts Options) (image.Image, error) {
	defer TimeTrack(time.Now(), "render scatter")
	o := opts.withDefaults()
	ch, sum, err := buildChart(points, o)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render scatter: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode scatter png: %w", err)
	}
	if o.Footer {
		img = drawFooter(img, footerText(sum))
	}
	return img, nil
}

// WritePNG renders the scatter and encodes it to w as PNG.
func WritePNG(w io.Writer, points []cnum.Complex, opts Options) error {
	img, err := Scatter(points, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WriteSVG renders the scatter as SVG markup to w. The footer strip is a
// raster overlay and does not apply here.
func WriteSVG(w io.Writer, points []cnum.Complex, opts Options) error {
	o := opts.withDefaults()
	ch, _, err := buildChart(points, o)
	if err != nil {
		return err
	}
	if err := ch.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	return nil
}

// finitePoints drops non-finite values (saturated oversized literals) with a
// warning: they still count in the statistics but have no place on a finite
// window.
func finitePoints(points []cnum.Complex) []cnum.Complex {
	dropped := countNonFinite(points)
	if dropped == 0 {
		return points
	}
	Warnf("dropping %d non-finite value(s) from the plot", dropped)
	finite := make([]cnum.Complex, 0, len(points)-dropped)
	for _, p := range points {
		if p.IsFinite() {
			finite = append(finite, p)
		}
	}
	return finite
}

// PlotWindow returns the padded bounds window a Scatter call would use for
// points, after the same non-finite filtering. UI overlays use it to invert
// pixel positions back to plane coordinates.
func PlotWindow(points []cnum.Complex) (plotmap.Bounds, error) {
	return plotmap.ComputeBounds(finitePoints(points))
}

// buildChart assembles the go-chart scatter shared by the PNG and SVG paths.
func buildChart(points []cnum.Complex, o Options) (chart.Chart, analysis.Summary, error) {
	finite := finitePoints(points)
	b, err := plotmap.ComputeBounds(finite)
	if err != nil {
		return chart.Chart{}, analysis.Summary{}, err
	}
	sum := analysis.Summarize(finite)

	xs := make([]float64, len(finite))
	ys := make([]float64, len(finite))
	for i, p := range finite {
		xs[i] = p.Re
		ys[i] = p.Im
	}

	series := make([]chart.Series, 0, 4)
	// zero-axis reference lines go in first so the data dots draw on top;
	// each axis appears only when it actually crosses the window
	if b.ContainsRealAxis() {
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{b.MinRe, b.MaxRe},
			YValues: []float64{0, 0},
			Style:   axisLineStyle(),
		})
	}
	if b.ContainsImagAxis() {
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{0, 0},
			YValues: []float64{b.MinIm, b.MaxIm},
			Style:   axisLineStyle(),
		})
	}
	series = append(series, chart.ContinuousSeries{
		Name:    fmt.Sprintf("Points (%d)", len(finite)),
		XValues: xs,
		YValues: ys,
		Style:   pointStyle(chart.ColorBlue, o.DotWidth),
	})
	if o.ShowMean {
		series = append(series, chart.ContinuousSeries{
			Name:    "Mean " + sum.Mean.String(),
			XValues: []float64{sum.Mean.Re},
			YValues: []float64{sum.Mean.Im},
			Style:   pointStyle(chart.ColorRed, o.DotWidth+3),
		})
	}

	padBottom := o.Margin
	if o.Footer {
		padBottom += FooterStripPx
	}
	ch := chart.Chart{
		Title:      o.Title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: o.Margin, Right: o.Margin, Bottom: padBottom}},
		XAxis: chart.XAxis{
			Name:           "Re",
			Range:          &chart.ContinuousRange{Min: b.MinRe, Max: b.MaxRe},
			Ticks:          chartTicks(b.ReTicks()),
			GridMajorStyle: gridLineStyle(),
			GridMinorStyle: gridLineStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "Im",
			Range:          &chart.ContinuousRange{Min: b.MinIm, Max: b.MaxIm},
			Ticks:          chartTicks(b.ImTicks()),
			GridMajorStyle: gridLineStyle(),
			GridMinorStyle: gridLineStyle(),
		},
		Series: series,
		Width:  o.Width,
		Height: o.Height,
	}
	if o.ShowLegend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return ch, sum, nil
}

// pointStyle renders dots only; the disabled stroke keeps go-chart from
// connecting scatter points with its default line.
func pointStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    width,
		DotColor:    col,
	}
}

// axisLineStyle is the thin reference line for the zero axes.
func axisLineStyle() chart.Style {
	return chart.Style{
		StrokeWidth: 1,
		StrokeColor: chart.ColorAlternateGray,
	}
}

// gridLineStyle draws a faint gridline at every interior tick. Major and
// minor share it so the grid matches the tick spacing, not the label
// alternation.
func gridLineStyle() chart.Style {
	return chart.Style{
		StrokeWidth: 1,
		StrokeColor: chart.ColorAlternateLightGray,
	}
}

func chartTicks(ts []plotmap.Tick) []chart.Tick {
	out := make([]chart.Tick, len(ts))
	for i, t := range ts {
		out[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

func countNonFinite(points []cnum.Complex) int {
	n := 0
	for _, p := range points {
		if !p.IsFinite() {
			n++
		}
	}
	return n
}

func footerText(sum analysis.Summary) string {
	return fmt.Sprintf("n=%d  mean=%s  var=%.4g  sd=%.4g", sum.Count, sum.Mean, sum.Variance, sum.StdDev)
}

// drawFooter stamps the summary line onto the bottom-left of the rendered
// image, white over a semi-opaque dark strip for contrast.
func drawFooter(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 6
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowCol := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	// shadow first, then the text itself
	drShadow := &font.Drawer{Dst: rgba, Src: shadowCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)}}
	drShadow.DrawString(text)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

// Blank returns a dark placeholder image, used by UI surfaces when a render
// attempt fails and something still has to fill the canvas.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}
