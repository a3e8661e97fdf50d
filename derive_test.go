package derive

import (
	"testing"

	"github.com/derivelab/derive/encode"
	"github.com/derivelab/derive/format"
)

type deriveTest struct {
	in, out string
}

var deriveTests = []deriveTest{
	{
		in:  `x`,
		out: `1`,
	},
	{
		in:  `17`,
		out: `0`,
	},
	{
		in:  `x * x`,
		out: `x * 2`,
	},
	{
		in:  `x ^ 3`,
		out: `x ^ 2 * 3`,
	},
	{
		in:  `x / (x + 1)`,
		out: `1 / (x + 1) ^ 2`,
	},
	{
		in:  `exp(x)`,
		out: `exp(x)`,
	},
	{
		in:  `log(x)`,
		out: `1 / x`,
	},
	{
		in:  `1 - x`,
		out: `-1`,
	},
}

func TestDerivative(t *testing.T) {
	for _, tt := range deriveTests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Derivative([]byte(tt.in), "x")
			if err != nil {
				t.Fatalf("Derivative(%q) error: %v", tt.in, err)
			}
			if got != tt.out {
				t.Errorf("Derivative(%q) = %q, want %q", tt.in, got, tt.out)
			}
		})
	}
}

func TestDerivativeParseError(t *testing.T) {
	if _, err := Derivative([]byte("x +"), "x"); err == nil {
		t.Error("Derivative of a malformed formula did not fail")
	}
}

func TestCanonical(t *testing.T) {
	tests := []deriveTest{
		{in: `x + 0`, out: `x`},
		{in: `2 * 3 * x`, out: `x * 6`},
		{in: `6 / 4`, out: `3 / 2`},
		{in: `x - x`, out: `x + x * -1`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Canonical([]byte(tt.in))
			if err != nil {
				t.Fatalf("Canonical(%q) error: %v", tt.in, err)
			}
			if got != tt.out {
				t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.out)
			}
		})
	}
}

func TestDerivativeLaTeX(t *testing.T) {
	got, err := Derivative([]byte("x / 2"), "x", encode.EncodeFormat(format.LaTeXFormat))
	if err != nil {
		t.Fatal(err)
	}
	want := `\displaystyle \frac{1}{2}`
	if got != want {
		t.Errorf("Derivative() = %q, want %q", got, want)
	}
}
