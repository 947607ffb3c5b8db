package main

import (
	"math"
	"testing"

	"github.com/foreverfine77/ComplexAnalyzer/src/cnum"
	"github.com/foreverfine77/ComplexAnalyzer/src/plotmap"
)

func TestNearestPointSelectsClosest(t *testing.T) {
	pts := []cnum.Complex{{Re: 0, Im: 0}, {Re: 10, Im: 0}, {Re: 0, Im: 10}}
	b, err := plotmap.ComputeBounds(pts)
	if err != nil {
		t.Fatalf("ComputeBounds: %v", err)
	}
	m := plotmap.NewMapping(b, 500, 500, 20)
	px, py := m.Point(pts[1])
	got, dist, ok := nearestPoint(m, pts, px+1, py)
	if !ok {
		t.Fatalf("nearestPoint found nothing")
	}
	if got != pts[1] {
		t.Fatalf("nearest = %v, want %v", got, pts[1])
	}
	if dist > 2 {
		t.Fatalf("distance = %v, want ~1", dist)
	}
}

func TestNearestPointSkipsNonFinite(t *testing.T) {
	pts := []cnum.Complex{{Re: math.Inf(1), Im: 0}, {Re: 1, Im: 1}}
	b := plotmap.Bounds{MinRe: 0, MaxRe: 2, MinIm: 0, MaxIm: 2}
	m := plotmap.NewMapping(b, 200, 200, 10)
	got, _, ok := nearestPoint(m, pts, 0, 0)
	if !ok {
		t.Fatalf("nearestPoint found nothing")
	}
	if want := (cnum.Complex{Re: 1, Im: 1}); got != want {
		t.Fatalf("nearest = %v, want %v", got, want)
	}
}

func TestNearestPointEmpty(t *testing.T) {
	m := plotmap.NewMapping(plotmap.Bounds{MaxRe: 1, MaxIm: 1}, 100, 100, 5)
	if _, _, ok := nearestPoint(m, nil, 10, 10); ok {
		t.Fatalf("expected ok=false with no points")
	}
}
