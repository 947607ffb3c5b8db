// Package plotmap turns a parsed complex set into a 2-D plotting window and
// the affine transforms between data space and pixel space. The render and
// viewer layers both consume the same Bounds, so overlays (mean marker,
// crosshair readout) can never drift from the plotted points.
package plotmap

import (
	"errors"
	"fmt"
	"math"

	"github.com/foreverfine77/ComplexAnalyzer/src/cnum"
)

// ErrNoPoints reports an empty parsed set. There is nothing to map; callers
// surface it as a "nothing parsed" message, not as a failure.
var ErrNoPoints = errors.New("plotmap: no points to map")

// PadFraction is the share of each axis range added as margin on both ends,
// so extreme points never sit on the plot border.
const PadFraction = 0.10

// TickSteps is the number of equal steps per axis across the padded window.
// Ticks land on the step boundaries and every other one carries a label.
const TickSteps = 10

// Bounds is the padded plotting window in data space.
type Bounds struct {
	MinRe, MaxRe float64
	MinIm, MaxIm float64
}

// Tick is one grid position on an axis. Label is empty on the in-between
// ticks that are drawn but deliberately left unlabeled.
type Tick struct {
	Value float64
	Label string
}

// ComputeBounds derives the padded window from the set's extents. An axis
// whose values are all equal has zero range; that range is treated as 1
// before padding so the window keeps finite area and the transforms never
// divide by zero.
func ComputeBounds(points []cnum.Complex) (Bounds, error) {
	if len(points) == 0 {
		return Bounds{}, ErrNoPoints
	}
	minRe, maxRe := points[0].Re, points[0].Re
	minIm, maxIm := points[0].Im, points[0].Im
	for _, p := range points[1:] {
		minRe = math.Min(minRe, p.Re)
		maxRe = math.Max(maxRe, p.Re)
		minIm = math.Min(minIm, p.Im)
		maxIm = math.Max(maxIm, p.Im)
	}
	padRe := axisPad(maxRe - minRe)
	padIm := axisPad(maxIm - minIm)
	return Bounds{
		MinRe: minRe - padRe, MaxRe: maxRe + padRe,
		MinIm: minIm - padIm, MaxIm: maxIm + padIm,
	}, nil
}

func axisPad(span float64) float64 {
	if span == 0 {
		span = 1
	}
	return span * PadFraction
}

// ContainsRealAxis reports whether the real axis (im = 0) falls inside the
// window. When the data sits strictly on one side of zero the axis line is
// omitted rather than clipped to the border.
func (b Bounds) ContainsRealAxis() bool { return b.MinIm <= 0 && 0 <= b.MaxIm }

// ContainsImagAxis reports whether the imaginary axis (re = 0) falls inside
// the window.
func (b Bounds) ContainsImagAxis() bool { return b.MinRe <= 0 && 0 <= b.MaxRe }

// ReTicks returns the tick positions along the real axis of the window.
func (b Bounds) ReTicks() []Tick { return Ticks(b.MinRe, b.MaxRe) }

// ImTicks returns the tick positions along the imaginary axis of the window.
func (b Bounds) ImTicks() []Tick { return Ticks(b.MinIm, b.MaxIm) }

// Ticks splits [min, max] into TickSteps equal steps and labels every other
// boundary starting with the first, leaving the rest as unlabeled grid marks.
func Ticks(min, max float64) []Tick {
	step := (max - min) / TickSteps
	out := make([]Tick, 0, TickSteps+1)
	for i := 0; i <= TickSteps; i++ {
		t := Tick{Value: min + float64(i)*step}
		if i%2 == 0 {
			t.Label = FormatTick(t.Value)
		}
		out = append(out, t)
	}
	return out
}

// FormatTick renders a tick value with magnitude-dependent precision so
// labels stay short on large scales and keep detail on small ones.
func FormatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	case av >= 0.01:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.2g", v)
	}
}

// Mapping is the affine data-to-pixel transform onto one target rectangle.
// X0/Y0 is the top-left corner of the plotting rectangle in pixels and X1/Y1
// the bottom-right. Pixel rows grow downward while the imaginary axis grows
// upward, so Y runs inverted.
type Mapping struct {
	B              Bounds
	X0, Y0, X1, Y1 float64
}

// NewMapping maps the window onto a width x height surface with a uniform
// pixel margin on all sides.
func NewMapping(b Bounds, width, height, margin int) Mapping {
	return NewMappingRect(b,
		float64(margin), float64(margin),
		float64(width-margin), float64(height-margin))
}

// NewMappingRect maps the window onto an explicit pixel rectangle, for
// surfaces that reserve asymmetric gutters (axis labels, title strips).
func NewMappingRect(b Bounds, x0, y0, x1, y1 float64) Mapping {
	return Mapping{B: b, X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// X maps a real component to a horizontal pixel position.
func (m Mapping) X(re float64) float64 {
	return m.X0 + (re-m.B.MinRe)/(m.B.MaxRe-m.B.MinRe)*(m.X1-m.X0)
}

// Y maps an imaginary component to a vertical pixel position (inverted).
func (m Mapping) Y(im float64) float64 {
	return m.Y1 - (im-m.B.MinIm)/(m.B.MaxIm-m.B.MinIm)*(m.Y1-m.Y0)
}

// Real inverts X: the real component rendered at pixel column px.
func (m Mapping) Real(px float64) float64 {
	return m.B.MinRe + (px-m.X0)/(m.X1-m.X0)*(m.B.MaxRe-m.B.MinRe)
}

// Imag inverts Y: the imaginary component rendered at pixel row py.
func (m Mapping) Imag(py float64) float64 {
	return m.B.MinIm + (m.Y1-py)/(m.Y1-m.Y0)*(m.B.MaxIm-m.B.MinIm)
}

// Point maps a value to its pixel position.
func (m Mapping) Point(c cnum.Complex) (x, y float64) {
	return m.X(c.Re), m.Y(c.Im)
}
