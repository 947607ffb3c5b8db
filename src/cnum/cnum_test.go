package cnum

import (
	"math"
	"testing"
)

func TestParseAcceptedForms(t *testing.T) {
	cases := []struct {
		in   string
		want Complex
	}{
		{"42", Complex{42, 0}},
		{"-7", Complex{-7, 0}},
		{"0.5", Complex{0.5, 0}},
		{".5", Complex{0.5, 0}},
		{"-0.25", Complex{-0.25, 0}},
		{"i", Complex{0, 1}},
		{"-i", Complex{0, -1}},
		{"3i", Complex{0, 3}},
		{"3.2i", Complex{0, 3.2}},
		{"-2.5i", Complex{0, -2.5}},
		{".5i", Complex{0, 0.5}},
		{"3+i", Complex{3, 1}},
		{"3-i", Complex{3, -1}},
		{"2-3i", Complex{2, -3}},
		{"1.5-0.5i", Complex{1.5, -0.5}},
		{"-1.5+2i", Complex{-1.5, 2}},
		{"-2-0.5i", Complex{-2, -0.5}},
		{"0+0i", Complex{0, 0}},
	}
	for _, c := range cases {
		got, ok := Parse(c.in)
		if !ok {
			t.Fatalf("Parse(%q) rejected, want %v", c.in, c.want)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseRejectedForms(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"i2",
		"2+",
		"+2i",
		"1++2i",
		"2i+3",
		"1+2",
		"--3",
		"3..5",
		".",
		"-.",
		".i",
		"-.i",
		"1+.i",
		"3 + 2i", // Parse itself never sees whitespace; reject raw
		"2e3",    // no exponent form in the grammar
	}
	for _, in := range cases {
		if got, ok := Parse(in); ok {
			t.Fatalf("Parse(%q) accepted as %v, want reject", in, got)
		}
	}
}

func TestParseHugeLiteralSaturates(t *testing.T) {
	// 400 nines overflows float64; strconv saturates to +Inf and the
	// literal is still a valid token.
	in := ""
	for i := 0; i < 400; i++ {
		in += "9"
	}
	got, ok := Parse(in)
	if !ok {
		t.Fatalf("Parse(<400 digits>) rejected")
	}
	if !math.IsInf(got.Re, 1) {
		t.Fatalf("Parse(<400 digits>).Re = %v, want +Inf", got.Re)
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("1+2i, foo\n\n bar\t3i,")
	want := []string{"1+2i", "foo", "bar", "3i"}
	if len(got) != len(want) {
		t.Fatalf("Tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitAndParseOrderAndShape(t *testing.T) {
	got := SplitAndParse("1+2i, 3-4i\n5+0i")
	want := []Complex{{1, 2}, {3, -4}, {5, 0}}
	assertPoints(t, got, want)
}

func TestSplitAndParseDropsBadTokens(t *testing.T) {
	got := SplitAndParse("1+2i foo 3i\nbananas\n-i")
	want := []Complex{{1, 2}, {0, 3}, {0, -1}}
	assertPoints(t, got, want)
}

func TestSplitAndParseSeparators(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []Complex
	}{
		{"comma runs", ",,1,,2,,", []Complex{{1, 0}, {2, 0}}},
		{"tabs and spaces", "1\t 2i  \t3", []Complex{{1, 0}, {0, 2}, {3, 0}}},
		{"crlf lines", "1\r\n2i\r\n", []Complex{{1, 0}, {0, 2}}},
		{"blank lines", "\n\n1\n\n\n2\n", []Complex{{1, 0}, {2, 0}}},
		{"mixed", " ,1+i,\t,2-2i\n , \n3i", []Complex{{1, 1}, {2, -2}, {0, 3}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assertPoints(t, SplitAndParse(c.in), c.want)
		})
	}
}

func TestSplitAndParseStripsExoticSpaces(t *testing.T) {
	// NBSP is not an ASCII separator, so it survives the split and must be
	// stripped from inside the token before parsing.
	got := SplitAndParse("1+ 2i")
	assertPoints(t, got, []Complex{{1, 2}})
}

func TestSplitAndParseEmptyInput(t *testing.T) {
	if got := SplitAndParse(""); len(got) != 0 {
		t.Fatalf("SplitAndParse(\"\") = %v, want empty", got)
	}
	if got := SplitAndParse(" \n\t\n , ,, \n"); len(got) != 0 {
		t.Fatalf("SplitAndParse(<separators only>) = %v, want empty", got)
	}
}

func TestComplexString(t *testing.T) {
	cases := []struct {
		in   Complex
		want string
	}{
		{Complex{1.5, -0.5}, "1.5-0.5i"},
		{Complex{0, 1}, "0+1i"},
		{Complex{-2, 0}, "-2+0i"},
		{Complex{3, 4}, "3+4i"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Fatalf("%#v.String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestComplexIsFinite(t *testing.T) {
	if !(Complex{1, -2}).IsFinite() {
		t.Fatalf("1-2i reported non-finite")
	}
	if (Complex{math.Inf(1), 0}).IsFinite() {
		t.Fatalf("+Inf reported finite")
	}
	if (Complex{0, math.NaN()}).IsFinite() {
		t.Fatalf("NaN reported finite")
	}
}

func TestComplexAbs(t *testing.T) {
	if got := (Complex{3, 4}).Abs(); got != 5 {
		t.Fatalf("Abs(3+4i) = %v, want 5", got)
	}
	if got := (Complex{0, 0}).Abs(); got != 0 {
		t.Fatalf("Abs(0) = %v, want 0", got)
	}
}

func assertPoints(t *testing.T, got, want []Complex) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points (%v), want %d (%v)", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
