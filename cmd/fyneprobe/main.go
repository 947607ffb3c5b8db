package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/foreverfine77/ComplexAnalyzer/src/cnum"
	"github.com/foreverfine77/ComplexAnalyzer/src/render"
)

// Renders one small scatter and shows it for a few seconds: a quick check
// that both the chart renderer and the Fyne driver work on this machine.
func main() {
	fmt.Println("[fyneprobe] rendering probe chart")
	img, err := render.Scatter(
		[]cnum.Complex{{Re: 1, Im: 1}, {Re: -1, Im: -1}, {Re: 2, Im: -1}},
		render.Options{Width: 480, Height: 320, Title: "Probe", ShowMean: true})
	if err != nil {
		fmt.Println("[fyneprobe] render failed:", err)
		img = render.Blank(480, 320)
	}

	fmt.Println("[fyneprobe] starting minimal Fyne app")
	a := app.New()
	w := a.NewWindow("Complex Analyzer Probe")
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.SetMinSize(fyne.NewSize(480, 320))
	w.SetContent(ci)
	go func() {
		time.Sleep(5 * time.Second)
		fmt.Println("[fyneprobe] closing window via fyne.Do")
		fyne.Do(func() { w.Close() })
	}()
	w.ShowAndRun()
	fmt.Println("[fyneprobe] exited cleanly")
}
