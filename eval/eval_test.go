package eval

import (
	"errors"
	"math"
	"testing"

	"github.com/derivelab/derive/expr"
	"github.com/derivelab/derive/parse"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, src string) *expr.Expr[string] {
	t.Helper()
	e, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return e
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		xs   []float64
		want []float64
	}{
		{"variable", "x", []float64{-1, 0, 2}, []float64{-1, 0, 2}},
		{"constant", "7", []float64{-1, 0, 2}, []float64{7, 7, 7}},
		{"line", "3 * x + 1", []float64{0, 1, 2}, []float64{1, 4, 7}},
		{"square", "x ^ 2", []float64{-2, 0, 3}, []float64{4, 0, 9}},
		{"quotient", "x / 2", []float64{1, 3}, []float64{0.5, 1.5}},
		{"subtraction", "1 - x", []float64{0, 1, 5}, []float64{1, 0, -4}},
		{"exp at zero", "exp(x)", []float64{0}, []float64{1}},
		{"log at one", "log(x)", []float64{1}, []float64{0}},
		{"empty samples", "x + 1", nil, []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(mustParse(t, tt.in), "x", tt.xs)
			if err != nil {
				t.Fatalf("Evaluate() error: %v", err)
			}
			if d := cmp.Diff(tt.want, got, cmp.Comparer(closeEnough)); d != "" {
				t.Errorf("Evaluate() mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

// Domain errors show up as non-finite samples, not as failures.
func TestEvaluateGaps(t *testing.T) {
	tests := []struct {
		name string
		in   string
		x    float64
		// one of "+inf", "-inf", "nan"
		want string
	}{
		{"division by zero", "1 / x", 0, "+inf"},
		{"negative division by zero", "-1 / x", 0, "-inf"},
		{"log of zero", "log(x)", 0, "-inf"},
		{"log of negative", "log(x)", -1, "nan"},
		{"zero over zero", "x / x", 0, "nan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ys, err := Evaluate(mustParse(t, tt.in), "x", []float64{tt.x})
			if err != nil {
				t.Fatalf("Evaluate() error: %v", err)
			}
			y := ys[0]
			ok := false
			switch tt.want {
			case "+inf":
				ok = math.IsInf(y, 1)
			case "-inf":
				ok = math.IsInf(y, -1)
			case "nan":
				ok = math.IsNaN(y)
			}
			if !ok {
				t.Errorf("Evaluate() = %v, want %s", y, tt.want)
			}
		})
	}
}

// A pole in the middle of the sample vector leaves the other samples intact.
func TestEvaluatePole(t *testing.T) {
	ys, err := Evaluate(mustParse(t, "1 / x"), "x", []float64{-1, 0, 1})
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if ys[0] != -1 || ys[2] != 1 {
		t.Errorf("Evaluate() = %v, want -1 and 1 around the pole", ys)
	}
	if !math.IsInf(ys[1], 0) && !math.IsNaN(ys[1]) {
		t.Errorf("Evaluate() at the pole = %v, want non-finite", ys[1])
	}
}

func TestEvaluateFreeVariable(t *testing.T) {
	_, err := Evaluate(mustParse(t, "x + y"), "x", []float64{1})
	if !errors.Is(err, ErrFreeVariable) {
		t.Errorf("Evaluate() error = %v, want ErrFreeVariable", err)
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name       string
		xs, ys     []float64
		minY, maxY float64
		want       [][]Point
	}{
		{"all finite",
			[]float64{0, 1, 2}, []float64{5, 6, 7}, -10, 10,
			[][]Point{{{0, 5}, {1, 6}, {2, 7}}}},
		{"infinity splits",
			[]float64{-1, 0, 1}, []float64{-1, math.Inf(1), 1}, -10, 10,
			[][]Point{{{-1, -1}}, {{1, 1}}}},
		{"nan splits",
			[]float64{0, 1, 2}, []float64{1, math.NaN(), 3}, -10, 10,
			[][]Point{{{0, 1}}, {{2, 3}}}},
		{"window clips",
			[]float64{0, 1, 2}, []float64{5, 50, 7}, -10, 10,
			[][]Point{{{0, 5}}, {{2, 7}}}},
		{"all out of window",
			[]float64{0, 1}, []float64{100, 200}, -10, 10,
			nil},
		{"empty", nil, nil, -10, 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segments(tt.xs, tt.ys, tt.minY, tt.maxY)
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("Segments() mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestLinspace(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		n        int
		want     []float64
	}{
		{"five across unit", 0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"two is the endpoints", -1, 1, 2, []float64{-1, 1}},
		{"one is the left edge", 3, 9, 1, []float64{3}},
		{"zero is empty", 0, 1, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linspace(tt.min, tt.max, tt.n)
			if d := cmp.Diff(tt.want, got, cmp.Comparer(closeEnough)); d != "" {
				t.Errorf("Linspace() mismatch (-want +got):\n%s", d)
			}
		})
	}
}
