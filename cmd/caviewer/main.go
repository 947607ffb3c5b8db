// Command caviewer is the desktop viewer: paste text containing complex
// number literals, compute their statistics and see them scattered over the
// complex plane. A --screenshots flag renders the charts headlessly instead.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/foreverfine77/ComplexAnalyzer/cmd/caviewer/uihelpers"
	"github.com/foreverfine77/ComplexAnalyzer/src/analysis"
	"github.com/foreverfine77/ComplexAnalyzer/src/cnum"
	"github.com/foreverfine77/ComplexAnalyzer/src/plotmap"
	"github.com/foreverfine77/ComplexAnalyzer/src/render"
)

const noValuesText = "No complex numbers found in the input text."

type uiState struct {
	app    fyne.App
	window fyne.Window

	input        *widget.Entry
	summaryLabel *widget.Label
	countLabel   *widget.Label
	chartCanvas  *canvas.Image
	overlay      *crosshairOverlay

	meanCheck      *widget.Check
	footerCheck    *widget.Check
	crosshairCheck *widget.Check
	dotSelect      *widget.Select

	points      []cnum.Complex
	summary     analysis.Summary
	mapping     plotmap.Mapping
	haveMapping bool

	showMean    bool
	showFooter  bool
	crosshairOn bool
	dotWidth    float64
}

// darkTheme forces the dark variant regardless of the desktop setting.
type darkTheme struct{}

func (darkTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	fileFlag := flag.String("file", "", "text file with complex numbers to load on startup")
	screenshotsFlag := flag.String("screenshots", "", "render demo charts into this directory and exit")
	logLevelFlag := flag.String("log-level", "info", "log verbosity: debug, info, warn, error")
	flag.Parse()
	render.SetLogLevel(*logLevelFlag)

	if *screenshotsFlag != "" {
		if err := RunScreenshotsMode(*screenshotsFlag, *fileFlag); err != nil {
			fmt.Fprintf(os.Stderr, "screenshots: %v\n", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.complexanalyzer.viewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("Complex Analyzer")
	w.Resize(fyne.NewSize(1100, 800))

	state := &uiState{app: a, window: w}
	// prefs come first so the overlay picks up its enabled state at creation
	loadPrefs(state)

	state.input = widget.NewMultiLineEntry()
	state.input.SetPlaceHolder("1+2i, 3-4i  -i  0.75+0.25i ...")
	state.input.Wrapping = fyne.TextWrapWord
	state.input.SetMinRowsVisible(6)

	state.summaryLabel = widget.NewLabel("")
	state.countLabel = widget.NewLabel("no values")

	computeBtn := widget.NewButton("Compute", nil)
	clearBtn := widget.NewButton("Clear", nil)
	state.meanCheck = widget.NewCheck("Mean", nil)
	state.footerCheck = widget.NewCheck("Footer", nil)
	state.crosshairCheck = widget.NewCheck("Crosshair", nil)
	state.dotSelect = widget.NewSelect([]string{"3", "4", "6", "8"}, nil)
	state.dotSelect.SetSelected(strconv.Itoa(int(state.dotWidth)))

	state.chartCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.chartCanvas.FillMode = canvas.ImageFillContain
	state.chartCanvas.SetMinSize(fyne.NewSize(900, 460))

	state.overlay = newCrosshairOverlay(state)
	state.overlay.enabled = state.crosshairOn

	topBar := container.NewHBox(
		computeBtn, clearBtn,
		widget.NewSeparator(),
		state.meanCheck, state.footerCheck, state.crosshairCheck,
		widget.NewLabel("Dot:"), state.dotSelect,
		state.countLabel,
	)
	chartStack := container.NewStack(state.chartCanvas, state.overlay)
	lower := container.NewVScroll(container.NewVBox(state.summaryLabel, chartStack))
	split := container.NewVSplit(state.input, lower)
	split.SetOffset(0.22)
	w.SetContent(container.NewBorder(topBar, nil, nil, nil, split))

	// re-render when the canvas width settles on a new value so the chart
	// stays sharp at the displayed scale
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(300 * time.Millisecond)
		defer ticker.Stop()
		lastW := 0
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				cw := int(state.chartCanvas.Size().Width)
				if cw > 0 && cw != lastW {
					lastW = cw
					fyne.Do(func() { renderChart(state) })
				}
			}
		}
	}()
	w.SetOnClosed(func() {
		savePrefs(state)
		close(done)
	})

	computeBtn.OnTapped = func() { computeAndRender(state) }
	clearBtn.OnTapped = func() { clearAll(state) }
	state.meanCheck.OnChanged = func(on bool) {
		state.showMean = on
		renderChart(state)
	}
	state.footerCheck.OnChanged = func(on bool) {
		state.showFooter = on
		renderChart(state)
	}
	state.crosshairCheck.OnChanged = func(on bool) {
		state.crosshairOn = on
		state.overlay.SetEnabled(on)
	}
	state.dotSelect.OnChanged = func(sel string) {
		if v, err := strconv.ParseFloat(sel, 64); err == nil && v > 0 {
			state.dotWidth = v
			renderChart(state)
		}
	}
	state.meanCheck.SetChecked(state.showMean)
	state.footerCheck.SetChecked(state.showFooter)
	state.crosshairCheck.SetChecked(state.crosshairOn)

	buildMenus(state)

	if *fileFlag != "" {
		if err := loadTextFile(state, *fileFlag); err != nil {
			render.Errorf("load %s: %v", *fileFlag, err)
		}
	}

	w.ShowAndRun()
}

// computeAndRender re-parses the input text from scratch and refreshes the
// summary and chart.
func computeAndRender(state *uiState) {
	defer render.TimeTrack(time.Now(), "viewer compute")
	state.points, state.summary = analysis.SummarizeText(state.input.Text)
	if len(state.points) == 0 {
		state.countLabel.SetText("no values")
		state.summaryLabel.SetText(noValuesText)
		clearChart(state)
		dialog.ShowInformation("Compute", noValuesText, state.window)
		return
	}
	state.countLabel.SetText(fmt.Sprintf("%d value(s)", state.summary.Count))
	state.summaryLabel.SetText(summaryText(state.summary))
	renderChart(state)
}

func summaryText(sum analysis.Summary) string {
	return fmt.Sprintf(
		"Points: %d    Mean: %s    Variance: %.6g    Std dev: %.6g\nMean |z|: %.6g    Re: [%.6g, %.6g]    Im: [%.6g, %.6g]",
		sum.Count, sum.Mean, sum.Variance, sum.StdDev,
		sum.MeanAbs, sum.MinRe, sum.MaxRe, sum.MinIm, sum.MaxIm)
}

// renderChart redraws the scatter for the already-parsed points at the size
// the canvas currently wants.
func renderChart(state *uiState) {
	if len(state.points) == 0 {
		return
	}
	w, h := chartSize(state)
	img, err := render.Scatter(state.points, render.Options{
		Width:      w,
		Height:     h,
		DotWidth:   state.dotWidth,
		Title:      "Complex plane",
		ShowMean:   state.showMean,
		ShowLegend: state.showMean,
		Footer:     state.showFooter,
	})
	if err != nil {
		render.Errorf("render chart: %v", err)
		state.chartCanvas.Image = render.Blank(w, h)
		state.haveMapping = false
		state.chartCanvas.Refresh()
		return
	}
	state.chartCanvas.Image = img
	state.haveMapping = updateMapping(state, w, h)
	state.chartCanvas.Refresh()
	state.overlay.Refresh()
}

// updateMapping rebuilds the plane-to-pixel mapping the crosshair inverts,
// from the same window the renderer used.
func updateMapping(state *uiState, imgW, imgH int) bool {
	b, err := render.PlotWindow(state.points)
	if err != nil {
		return false
	}
	bottom := float64(imgH - plotGutterBottom)
	if state.showFooter {
		bottom -= render.FooterStripPx
	}
	state.mapping = plotmap.NewMappingRect(b,
		plotGutterLeft, plotGutterTop,
		float64(imgW-plotGutterRight), bottom)
	return true
}

func chartSize(state *uiState) (int, int) {
	raw := 1000
	if state.chartCanvas != nil {
		if cw := int(state.chartCanvas.Size().Width); cw > 0 {
			raw = cw
		}
	}
	return uihelpers.ComputeChartDimensions(raw)
}

func clearAll(state *uiState) {
	state.input.SetText("")
	state.points = nil
	state.summary = analysis.Summary{}
	state.countLabel.SetText("no values")
	state.summaryLabel.SetText("")
	clearChart(state)
}

func clearChart(state *uiState) {
	state.haveMapping = false
	state.chartCanvas.Image = image.NewRGBA(image.Rect(0, 0, 100, 60))
	state.chartCanvas.Refresh()
	state.overlay.Refresh()
}

func buildMenus(state *uiState) {
	openItem := fyne.NewMenuItem("Open Text File…", func() { openTextFileDialog(state) })
	exportItem := fyne.NewMenuItem("Export Chart as PNG…", func() { exportChartPNG(state) })
	quitItem := fyne.NewMenuItem("Quit", func() { state.window.Close() })
	fileMenu := fyne.NewMenu("File",
		openItem,
		exportItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := state.window.Canvas()
	for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: mod}, func(fyne.Shortcut) {
			openTextFileDialog(state)
		})
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: mod}, func(fyne.Shortcut) {
			exportChartPNG(state)
		})
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyReturn, Modifier: mod}, func(fyne.Shortcut) {
			computeAndRender(state)
		})
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: mod}, func(fyne.Shortcut) {
			state.window.Close()
		})
	}
}

func openTextFileDialog(state *uiState) {
	fo := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, state.window)
			return
		}
		if rc == nil {
			return
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			dialog.ShowError(fmt.Errorf("read %s: %w", rc.URI().Name(), err), state.window)
			return
		}
		state.input.SetText(string(data))
		computeAndRender(state)
	}, state.window)
	fo.SetFilter(storage.NewExtensionFileFilter([]string{".txt", ".csv", ".log"}))
	fo.Show()
}

func loadTextFile(state *uiState, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	state.input.SetText(string(data))
	computeAndRender(state)
	return nil
}

func exportChartPNG(state *uiState) {
	if state.chartCanvas == nil || state.chartCanvas.Image == nil || len(state.points) == 0 {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, state.chartCanvas.Image); err != nil {
			dialog.ShowError(fmt.Errorf("encode png: %w", err), state.window)
			return
		}
		state.app.Preferences().SetString("lastExportDir", filepath.Dir(wc.URI().Path()))
		render.Infof("exported chart to %s", wc.URI().Path())
	}, state.window)
	fs.SetFileName("complex-scatter.png")
	if dir := state.app.Preferences().StringWithFallback("lastExportDir", ""); dir != "" {
		if lu, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fs.SetLocation(lu)
		}
	}
	fs.Show()
}

func savePrefs(state *uiState) {
	p := state.app.Preferences()
	p.SetBool("showMean", state.showMean)
	p.SetBool("showFooter", state.showFooter)
	p.SetBool("crosshair", state.crosshairOn)
	p.SetFloat("dotWidth", state.dotWidth)
}

// loadPrefs restores the chart options. Input text is deliberately not
// persisted; every session starts from a blank sheet.
func loadPrefs(state *uiState) {
	p := state.app.Preferences()
	state.showMean = p.BoolWithFallback("showMean", true)
	state.showFooter = p.BoolWithFallback("showFooter", false)
	state.crosshairOn = p.BoolWithFallback("crosshair", false)
	state.dotWidth = p.FloatWithFallback("dotWidth", render.DefaultDotWidth)
}
