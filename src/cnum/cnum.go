// Package cnum parses complex-number literals out of free-form pasted text.
//
// Three literal forms are recognized, tried in priority order against the
// whole token: pure real ("42", "-0.5"), pure imaginary ("i", "-3.2i") and
// the binomial form ("1.5-0.5i"). A token matching none of them is not a
// value and is silently dropped by the splitter.
package cnum

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Complex is one parsed value, a point (Re, Im) on the complex plane.
type Complex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// Literal grammars, anchored to the full token. Order matters: a plain
// number must parse as pure real, never as the real part of a binomial.
var (
	realRE     = regexp.MustCompile(`^-?\d*\.?\d+$`)
	imagRE     = regexp.MustCompile(`^(-?\d*\.?\d*)i$`)
	binomialRE = regexp.MustCompile(`^(-?\d*\.?\d+)([-+])(\d*\.?\d*)i$`)
)

// Token separators inside one line. Commas and ASCII whitespace both split;
// runs of them produce no empty tokens.
var tokenSepRE = regexp.MustCompile(`[\s,]+`)

// Parse interprets a single token as a complex literal. The token must carry
// no whitespace (SplitAndParse guarantees that). The second return is false
// when the token matches no grammar or a matched numeric part does not
// survive strconv.
func Parse(token string) (Complex, bool) {
	if realRE.MatchString(token) {
		re, ok := parseFloat(token)
		if !ok {
			return Complex{}, false
		}
		return Complex{Re: re}, true
	}
	if m := imagRE.FindStringSubmatch(token); m != nil {
		im, ok := imagMagnitude(m[1])
		if !ok {
			return Complex{}, false
		}
		return Complex{Im: im}, true
	}
	if m := binomialRE.FindStringSubmatch(token); m != nil {
		re, ok := parseFloat(m[1])
		if !ok {
			return Complex{}, false
		}
		im, ok := imagMagnitude(m[3])
		if !ok {
			return Complex{}, false
		}
		if m[2] == "-" {
			im = -im
		}
		return Complex{Re: re, Im: im}, true
	}
	return Complex{}, false
}

// Tokens splits raw multi-line text into the candidate tokens the parser
// sees: lines top to bottom, tokens left to right, separators and blank
// lines removed, exotic space runes stripped from each token.
func Tokens(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, tok := range tokenSepRE.Split(line, -1) {
			tok = stripSpace(tok)
			if tok == "" {
				continue
			}
			out = append(out, tok)
		}
	}
	return out
}

// SplitAndParse extracts every parseable complex literal from raw multi-line
// text, preserving input order. Unparseable tokens and blank lines are
// skipped without error.
func SplitAndParse(text string) []Complex {
	var out []Complex
	for _, tok := range Tokens(text) {
		if v, ok := Parse(tok); ok {
			out = append(out, v)
		}
	}
	return out
}

// parseFloat is strconv.ParseFloat with range saturation: literals whose
// magnitude exceeds float64 keep the ±Inf strconv reports alongside ErrRange
// instead of being rejected. Other parse failures reject the token.
func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// imagMagnitude resolves the coefficient in front of "i". A bare or
// sign-only coefficient means magnitude one ("i" -> 1, "-i" -> -1).
func imagMagnitude(prefix string) (float64, bool) {
	switch prefix {
	case "":
		return 1, true
	case "-":
		return -1, true
	}
	return parseFloat(prefix)
}

// stripSpace removes every Unicode space rune. The separator split already
// removes ASCII whitespace; this also catches exotic spaces (NBSP and the
// like) that pasted text sometimes carries inside a token.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Abs returns the modulus (Euclidean distance from the origin).
func (c Complex) Abs() float64 { return math.Hypot(c.Re, c.Im) }

// IsFinite reports whether both components are ordinary numbers. Oversized
// literals saturate to ±Inf during parsing; such values take part in the
// statistics but cannot be placed on a finite plotting window.
func (c Complex) IsFinite() bool {
	return !math.IsInf(c.Re, 0) && !math.IsNaN(c.Re) &&
		!math.IsInf(c.Im, 0) && !math.IsNaN(c.Im)
}

// String renders the value in a+bi form, e.g. "1.5-0.5i".
func (c Complex) String() string {
	re := strconv.FormatFloat(c.Re, 'g', -1, 64)
	im := strconv.FormatFloat(math.Abs(c.Im), 'g', -1, 64)
	sign := "+"
	if c.Im < 0 || (c.Im == 0 && math.Signbit(c.Im)) {
		sign = "-"
	}
	return re + sign + im + "i"
}
