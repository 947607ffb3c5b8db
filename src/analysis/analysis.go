// Package analysis reduces a parsed set of complex values to aggregate
// statistics: the centroid mean, a scalar dispersion measure and per-axis
// extents used by the summary surfaces.
package analysis

import (
	"math"

	"github.com/foreverfine77/ComplexAnalyzer/src/cnum"
)

// SchemaVersion identifies the JSON summary layout emitted by canalyze.
const SchemaVersion = 1

// Summary holds the aggregate metrics for one input submission.
//
// Mean is the centroid (componentwise average). Variance is the population
// mean of squared Euclidean distances to the mean point, so it is a single
// real number even though the inputs are complex. An empty set yields the
// zero Summary by definition, not an error.
type Summary struct {
	SchemaVersion int          `json:"schema_version"`
	Count         int          `json:"count"`
	Mean          cnum.Complex `json:"mean"`
	Variance      float64      `json:"variance"`
	StdDev        float64      `json:"std_dev"`
	MeanAbs       float64      `json:"mean_abs"`
	MinRe         float64      `json:"min_re"`
	MaxRe         float64      `json:"max_re"`
	MinIm         float64      `json:"min_im"`
	MaxIm         float64      `json:"max_im"`
}

// Summarize computes the Summary for points in two passes: extents and mean
// first, then squared distances against that mean. Re-running on the same
// slice yields an identical Summary.
func Summarize(points []cnum.Complex) Summary {
	s := Summary{SchemaVersion: SchemaVersion, Count: len(points)}
	if len(points) == 0 {
		return s
	}
	var sumRe, sumIm float64
	minRe, maxRe := points[0].Re, points[0].Re
	minIm, maxIm := points[0].Im, points[0].Im
	for _, p := range points {
		sumRe += p.Re
		sumIm += p.Im
		minRe = math.Min(minRe, p.Re)
		maxRe = math.Max(maxRe, p.Re)
		minIm = math.Min(minIm, p.Im)
		maxIm = math.Max(maxIm, p.Im)
	}
	n := float64(len(points))
	s.Mean = cnum.Complex{Re: sumRe / n, Im: sumIm / n}

	var dist2, sumAbs float64
	for _, p := range points {
		dr := p.Re - s.Mean.Re
		di := p.Im - s.Mean.Im
		dist2 += dr*dr + di*di
		sumAbs += p.Abs()
	}
	s.Variance = dist2 / n
	s.StdDev = math.Sqrt(s.Variance)
	s.MeanAbs = sumAbs / n
	s.MinRe, s.MaxRe = minRe, maxRe
	s.MinIm, s.MaxIm = minIm, maxIm
	return s
}

// SummarizeText runs the whole pipeline over raw pasted text: split, parse,
// summarize. The parsed points are returned alongside the Summary so callers
// can hand the same set to the plot mapper without re-parsing.
func SummarizeText(text string) ([]cnum.Complex, Summary) {
	pts := cnum.SplitAndParse(text)
	return pts, Summarize(pts)
}

// SpreadRe returns the width of the real extent.
func (s Summary) SpreadRe() float64 { return s.MaxRe - s.MinRe }

// SpreadIm returns the height of the imaginary extent.
func (s Summary) SpreadIm() float64 { return s.MaxIm - s.MinIm }
