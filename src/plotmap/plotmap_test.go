package plotmap

import (
	"errors"
	"math"
	"testing"

	"github.com/foreverfine77/ComplexAnalyzer/src/cnum"
)

func TestComputeBoundsPadding(t *testing.T) {
	b, err := ComputeBounds([]cnum.Complex{{Re: 0, Im: 0}, {Re: 10, Im: 20}})
	if err != nil {
		t.Fatalf("ComputeBounds: %v", err)
	}
	assertClose(t, "MinRe", b.MinRe, -1)
	assertClose(t, "MaxRe", b.MaxRe, 11)
	assertClose(t, "MinIm", b.MinIm, -2)
	assertClose(t, "MaxIm", b.MaxIm, 22)
}

func TestComputeBoundsZeroRange(t *testing.T) {
	// all points identical: both ranges are zero and get widened as if 1
	b, err := ComputeBounds([]cnum.Complex{{Re: 5, Im: 5}, {Re: 5, Im: 5}})
	if err != nil {
		t.Fatalf("ComputeBounds: %v", err)
	}
	assertClose(t, "MinRe", b.MinRe, 4.9)
	assertClose(t, "MaxRe", b.MaxRe, 5.1)
	assertClose(t, "MinIm", b.MinIm, 4.9)
	assertClose(t, "MaxIm", b.MaxIm, 5.1)
}

func TestComputeBoundsSinglePoint(t *testing.T) {
	b, err := ComputeBounds([]cnum.Complex{{Re: -3, Im: 7}})
	if err != nil {
		t.Fatalf("ComputeBounds: %v", err)
	}
	if b.MaxRe <= b.MinRe || b.MaxIm <= b.MinIm {
		t.Fatalf("degenerate window for single point: %+v", b)
	}
	assertClose(t, "MinRe", b.MinRe, -3.1)
	assertClose(t, "MaxIm", b.MaxIm, 7.1)
}

func TestComputeBoundsEmpty(t *testing.T) {
	_, err := ComputeBounds(nil)
	if !errors.Is(err, ErrNoPoints) {
		t.Fatalf("ComputeBounds(nil) err = %v, want ErrNoPoints", err)
	}
}

func TestAxisVisibility(t *testing.T) {
	crossing, err := ComputeBounds([]cnum.Complex{{Re: -1, Im: -1}, {Re: 1, Im: 1}})
	if err != nil {
		t.Fatalf("ComputeBounds: %v", err)
	}
	if !crossing.ContainsRealAxis() || !crossing.ContainsImagAxis() {
		t.Fatalf("axes missing from window straddling the origin: %+v", crossing)
	}

	// data strictly in the upper-right quadrant, away from both axes
	offset, err := ComputeBounds([]cnum.Complex{{Re: 50, Im: 50}, {Re: 60, Im: 70}})
	if err != nil {
		t.Fatalf("ComputeBounds: %v", err)
	}
	if offset.ContainsRealAxis() || offset.ContainsImagAxis() {
		t.Fatalf("axes reported inside an offset window: %+v", offset)
	}
}

func TestMappingForward(t *testing.T) {
	b := Bounds{MinRe: 0, MaxRe: 10, MinIm: 0, MaxIm: 10}
	m := NewMapping(b, 100, 100, 10)
	assertClose(t, "X(min)", m.X(0), 10)
	assertClose(t, "X(max)", m.X(10), 90)
	assertClose(t, "X(mid)", m.X(5), 50)
	// pixel rows grow downward: the window top maps to the small row value
	assertClose(t, "Y(max)", m.Y(10), 10)
	assertClose(t, "Y(min)", m.Y(0), 90)
	if m.Y(10) >= m.Y(0) {
		t.Fatalf("Y not inverted: Y(top)=%v Y(bottom)=%v", m.Y(10), m.Y(0))
	}
}

func TestMappingRoundTrip(t *testing.T) {
	b := Bounds{MinRe: -2.2, MaxRe: 3.3, MinIm: -1.1, MaxIm: 4.4}
	m := NewMapping(b, 913, 577, 42)
	for _, c := range []cnum.Complex{
		{Re: -2.2, Im: -1.1},
		{Re: 3.3, Im: 4.4},
		{Re: 0, Im: 0},
		{Re: 1.234, Im: -0.987},
	} {
		x, y := m.Point(c)
		if got := m.Real(x); math.Abs(got-c.Re) > 1e-9 {
			t.Fatalf("Real(X(%v)) = %v", c.Re, got)
		}
		if got := m.Imag(y); math.Abs(got-c.Im) > 1e-9 {
			t.Fatalf("Imag(Y(%v)) = %v", c.Im, got)
		}
	}
}

func TestMappingRectGutters(t *testing.T) {
	b := Bounds{MinRe: 0, MaxRe: 1, MinIm: 0, MaxIm: 1}
	m := NewMappingRect(b, 60, 15, 580, 380)
	assertClose(t, "X(0)", m.X(0), 60)
	assertClose(t, "X(1)", m.X(1), 580)
	assertClose(t, "Y(1)", m.Y(1), 15)
	assertClose(t, "Y(0)", m.Y(0), 380)
	assertClose(t, "Real(320)", m.Real(320), 0.5)
}

func TestTicksShape(t *testing.T) {
	ts := Ticks(-1, 11)
	if len(ts) != TickSteps+1 {
		t.Fatalf("len(ticks) = %d, want %d", len(ts), TickSteps+1)
	}
	assertClose(t, "first", ts[0].Value, -1)
	assertClose(t, "last", ts[len(ts)-1].Value, 11)
	step := ts[1].Value - ts[0].Value
	for i := 1; i < len(ts); i++ {
		if math.Abs((ts[i].Value-ts[i-1].Value)-step) > 1e-9 {
			t.Fatalf("uneven step at %d: %v vs %v", i, ts[i].Value-ts[i-1].Value, step)
		}
	}
	for i, tk := range ts {
		if i%2 == 0 && tk.Label == "" {
			t.Fatalf("tick %d should carry a label", i)
		}
		if i%2 == 1 && tk.Label != "" {
			t.Fatalf("tick %d should be unlabeled, got %q", i, tk.Label)
		}
	}
}

func TestFormatTick(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{123.4, "123"},
		{-123.4, "-123"},
		{12.34, "12.3"},
		{1.234, "1.23"},
		{-0.5, "-0.50"},
		{0.001234, "0.0012"},
	}
	for _, c := range cases {
		if got := FormatTick(c.in); got != c.want {
			t.Fatalf("FormatTick(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func assertClose(t *testing.T, label string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
}
