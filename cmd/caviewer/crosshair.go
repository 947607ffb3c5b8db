package main

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/foreverfine77/ComplexAnalyzer/cmd/caviewer/uihelpers"
	"github.com/foreverfine77/ComplexAnalyzer/src/cnum"
	"github.com/foreverfine77/ComplexAnalyzer/src/plotmap"
)

// Gutters of the plot rectangle inside the rendered chart image, in image
// pixels. They approximate the go-chart layout for renderChart's options:
// title strip on top, X tick labels and axis name below, Y labels on the
// right. Good enough for a hover readout.
const (
	plotGutterLeft   = 24
	plotGutterRight  = 72
	plotGutterTop    = 30
	plotGutterBottom = 44
)

// snapRadiusPx is the on-screen distance within which the crosshair readout
// snaps to a parsed value and marks it.
const snapRadiusPx = 24.0

// crosshairOverlay tracks the pointer over the chart canvas and shows the
// plane coordinates under the cursor, plus the nearest parsed value when
// close enough.
type crosshairOverlay struct {
	widget.BaseWidget
	state    *uiState
	enabled  bool
	mouse    fyne.Position
	hovering bool
}

var _ desktop.Hoverable = (*crosshairOverlay)(nil)

func newCrosshairOverlay(state *uiState) *crosshairOverlay {
	c := &crosshairOverlay{state: state}
	c.ExtendBaseWidget(c)
	return c
}

func (c *crosshairOverlay) SetEnabled(on bool) {
	c.enabled = on
	if !on {
		c.hovering = false
	}
	c.Refresh()
}

func (c *crosshairOverlay) MouseIn(ev *desktop.MouseEvent) {
	if !c.enabled {
		return
	}
	c.hovering = true
	c.mouse = ev.Position
	c.Refresh()
}

func (c *crosshairOverlay) MouseMoved(ev *desktop.MouseEvent) {
	if !c.enabled {
		return
	}
	c.hovering = true
	c.mouse = ev.Position
	c.Refresh()
}

func (c *crosshairOverlay) MouseOut() {
	c.hovering = false
	c.Refresh()
}

func (c *crosshairOverlay) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.Transparent) // full-size hover hit area
	lineV := canvas.NewLine(color.RGBA{R: 200, G: 200, B: 200, A: 220})
	lineV.StrokeWidth = 1
	lineH := canvas.NewLine(color.RGBA{R: 200, G: 200, B: 200, A: 220})
	lineH.StrokeWidth = 1
	dot := canvas.NewCircle(color.RGBA{R: 255, G: 80, B: 80, A: 230})
	label := widget.NewRichText()
	label.Wrapping = fyne.TextWrapOff
	labelBG := canvas.NewRectangle(color.RGBA{A: 170})
	return &crosshairRenderer{c: c, bg: bg, lineV: lineV, lineH: lineH, dot: dot, label: label, labelBG: labelBG}
}

type crosshairRenderer struct {
	c       *crosshairOverlay
	bg      *canvas.Rectangle
	lineV   *canvas.Line
	lineH   *canvas.Line
	dot     *canvas.Circle
	label   *widget.RichText
	labelBG *canvas.Rectangle
}

func (r *crosshairRenderer) Destroy() {}

func (r *crosshairRenderer) MinSize() fyne.Size { return fyne.NewSize(10, 10) }

func (r *crosshairRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.lineV, r.lineH, r.dot, r.labelBG, r.label}
}

func (r *crosshairRenderer) Refresh() {
	r.Layout(r.c.Size())
	col := theme.Color(theme.ColorNameDisabled)
	r.lineV.StrokeColor = col
	r.lineH.StrokeColor = col
	r.lineV.Refresh()
	r.lineH.Refresh()
	r.label.Refresh()
	r.labelBG.Refresh()
}

func (r *crosshairRenderer) hide() {
	off := fyne.NewPos(-1000, -1000)
	r.lineV.Position1 = off
	r.lineV.Position2 = off
	r.lineH.Position1 = off
	r.lineH.Position2 = off
	r.dot.Move(off)
	r.dot.Resize(fyne.NewSize(0, 0))
	r.label.Move(off)
	r.labelBG.Move(off)
	r.labelBG.Resize(fyne.NewSize(0, 0))
}

func (r *crosshairRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	st := r.c.state
	if !r.c.enabled || !r.c.hovering || st == nil || !st.haveMapping ||
		st.chartCanvas == nil || st.chartCanvas.Image == nil {
		r.hide()
		return
	}

	imgB := st.chartCanvas.Image.Bounds()
	drawX, drawY, drawW, drawH, scale := uihelpers.ComputeContainRect(
		float32(imgB.Dx()), float32(imgB.Dy()), size.Width, size.Height)
	if scale <= 0 {
		r.hide()
		return
	}

	mx, my := r.c.mouse.X, r.c.mouse.Y
	if mx < drawX || mx > drawX+drawW || my < drawY || my > drawY+drawH {
		r.hide()
		return
	}

	// cursor into image pixel space, then inverted to plane coordinates
	imgX := float64((mx - drawX) / scale)
	imgY := float64((my - drawY) / scale)
	re := st.mapping.Real(imgX)
	im := st.mapping.Imag(imgY)

	r.lineV.Position1 = fyne.NewPos(mx, drawY)
	r.lineV.Position2 = fyne.NewPos(mx, drawY+drawH)
	r.lineH.Position1 = fyne.NewPos(drawX, my)
	r.lineH.Position2 = fyne.NewPos(drawX+drawW, my)

	text := fmt.Sprintf("re=%.4g  im=%.4g", re, im)
	if p, dist, ok := nearestPoint(st.mapping, st.points, imgX, imgY); ok && dist*float64(scale) <= snapRadiusPx {
		text += "\n" + p.String()
		px, py := st.mapping.Point(p)
		dx := drawX + float32(px)*scale
		dy := drawY + float32(py)*scale
		r.dot.Resize(fyne.NewSize(8, 8))
		r.dot.Move(fyne.NewPos(dx-4, dy-4))
	} else {
		r.dot.Move(fyne.NewPos(-1000, -1000))
		r.dot.Resize(fyne.NewSize(0, 0))
	}

	r.label.Segments = []widget.RichTextSegment{&widget.TextSegment{
		Text:  text,
		Style: widget.RichTextStyle{TextStyle: fyne.TextStyle{Monospace: true}},
	}}
	r.label.Refresh()

	const pad float32 = 4
	ls := r.label.MinSize()
	lx := mx + 8
	ly := my + 8
	if lx+ls.Width+2*pad > size.Width {
		lx = mx - ls.Width - 8
	}
	if ly+ls.Height+2*pad > size.Height {
		ly = my - ls.Height - 8
	}
	if lx < 0 {
		lx = 0
	}
	if ly < 0 {
		ly = 0
	}
	r.labelBG.Move(fyne.NewPos(lx-pad, ly-pad))
	r.labelBG.Resize(fyne.NewSize(ls.Width+2*pad, ls.Height+2*pad))
	r.label.Move(fyne.NewPos(lx, ly))
	r.label.Resize(ls)
}

// nearestPoint returns the point closest to (imgX, imgY) in image pixel
// space and its distance there, or ok=false when no finite point exists.
func nearestPoint(m plotmap.Mapping, pts []cnum.Complex, imgX, imgY float64) (cnum.Complex, float64, bool) {
	best := cnum.Complex{}
	bestDist := math.Inf(1)
	found := false
	for _, p := range pts {
		if !p.IsFinite() {
			continue
		}
		px, py := m.Point(p)
		d := math.Hypot(px-imgX, py-imgY)
		if d < bestDist {
			best = p
			bestDist = d
			found = true
		}
	}
	return best, bestDist, found
}
