package main

import (
	"math"
	"strings"
	"testing"

	"github.com/foreverfine77/ComplexAnalyzer/src/analysis"
	"github.com/foreverfine77/ComplexAnalyzer/src/cnum"
	"github.com/foreverfine77/ComplexAnalyzer/src/render"
)

func TestSummaryTextFields(t *testing.T) {
	_, sum := analysis.SummarizeText("1+2i 3+4i")
	text := summaryText(sum)
	for _, want := range []string{
		"Points: 2",
		"Mean: 2+3i",
		"Variance: 2",
		"Std dev: 1.41421",
		"Im: [2, 4]",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("summary %q missing %q", text, want)
		}
	}
}

func TestUpdateMappingInvertsWindowEdges(t *testing.T) {
	st := &uiState{points: []cnum.Complex{{Re: 0, Im: 0}, {Re: 10, Im: 10}}}
	if !updateMapping(st, 1000, 600) {
		t.Fatalf("updateMapping returned false")
	}
	b, err := render.PlotWindow(st.points)
	if err != nil {
		t.Fatalf("PlotWindow: %v", err)
	}
	if re := st.mapping.Real(plotGutterLeft); math.Abs(re-b.MinRe) > 1e-9 {
		t.Fatalf("Real(left edge) = %v, want %v", re, b.MinRe)
	}
	if im := st.mapping.Imag(plotGutterTop); math.Abs(im-b.MaxIm) > 1e-9 {
		t.Fatalf("Imag(top edge) = %v, want %v", im, b.MaxIm)
	}
}

func TestUpdateMappingFooterShiftsBottom(t *testing.T) {
	pts := []cnum.Complex{{Re: 0, Im: 0}, {Re: 1, Im: 1}}
	plain := &uiState{points: pts}
	footer := &uiState{points: pts, showFooter: true}
	if !updateMapping(plain, 800, 500) || !updateMapping(footer, 800, 500) {
		t.Fatalf("updateMapping returned false")
	}
	// the footer strip moves the plot bottom up, so the same pixel row must
	// read back a different imaginary value
	if plain.mapping.Imag(400) == footer.mapping.Imag(400) {
		t.Fatalf("footer strip did not shift the mapping")
	}
}

func TestUpdateMappingNoPoints(t *testing.T) {
	st := &uiState{}
	if updateMapping(st, 800, 500) {
		t.Fatalf("expected updateMapping to fail without points")
	}
}

func TestChartSizeWithoutCanvas(t *testing.T) {
	w, h := chartSize(&uiState{})
	if w != 1000 || h != 550 {
		t.Fatalf("chartSize fallback = %dx%d, want 1000x550", w, h)
	}
}

func TestDemoInputParses(t *testing.T) {
	pts := cnum.SplitAndParse(demoInput)
	if len(pts) != 10 {
		t.Fatalf("demo input parsed to %d values, want 10", len(pts))
	}
}
