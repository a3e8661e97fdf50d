package expr

import (
	"testing"
)

// TestDerivativeRaw checks the unreduced output of the rules themselves.
func TestDerivativeRaw(t *testing.T) {
	tests := []struct {
		name string
		in   *Expr[string]
		want *Expr[string]
	}{
		{"variable", x(), FromInt[string](1)},
		{"other variable", y(), FromInt[string](0)},
		{"integer", FromInt[string](5), FromInt[string](0)},
		{"sum rule keeps shape",
			Sum(x(), FromInt[string](1)),
			Sum(FromInt[string](1), FromInt[string](0))},
		{"product rule one summand per factor",
			Product(x(), y()),
			Sum(
				Product(FromInt[string](1), y()),
				Product(FromInt[string](0), x()),
			)},
		{"exp chain",
			Exp(x()),
			Product(Exp(x()), FromInt[string](1))},
		{"log chain",
			Log(x()),
			Quotient(FromInt[string](1), x())},
		{"zero exponent", Power(x(), FromInt[string](0)), FromInt[string](0)},
		{"unit exponent", Power(x(), FromInt[string](1)), FromInt[string](1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Derivative("x")
			if !got.Equal(tt.want) {
				t.Errorf("Derivative() mismatch (-want +got):\n%s", diff(tt.want, got))
			}
		})
	}
}

func TestDerivativeSimplified(t *testing.T) {
	tests := []struct {
		name string
		in   *Expr[string]
		want *Expr[string]
	}{
		{"d(x+1) = 1",
			Sum(x(), FromInt[string](1)),
			FromInt[string](1)},
		{"d(x*y) = y",
			Product(x(), y()),
			y()},
		{"d(x*x) = x*2",
			Product(x(), x()),
			Product(x(), FromInt[string](2))},
		{"d(x^3) = x^2*3",
			Power(x(), FromInt[string](3)),
			Product(Power(x(), FromInt[string](2)), FromInt[string](3))},
		{"d(x/(x+1)) = 1/(x+1)^2",
			Quotient(x(), Sum(x(), FromInt[string](1))),
			Quotient(
				FromInt[string](1),
				Power(Sum(x(), FromInt[string](1)), FromInt[string](2)),
			)},
		{"d(exp(x)) = exp(x)",
			Exp(x()),
			Exp(x())},
		{"d(log(x)) = 1/x",
			Log(x()),
			Quotient(FromInt[string](1), x())},
		{"d(exp(x*x)) = exp(x^2)*x*2",
			Exp(Product(x(), x())),
			Product(Exp(Power(x(), FromInt[string](2))), x(), FromInt[string](2))},
		{"d(2^x) = 2^x*log(2)",
			Power(FromInt[string](2), x()),
			Product(Power(FromInt[string](2), x()), Log(FromInt[string](2)))},
		{"d(x^x) uses the general rule",
			Power(x(), x()),
			Product(
				Power(x(), x()),
				Sum(
					Log(x()),
					Product(x(), Quotient(FromInt[string](1), x())),
				),
			)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Derivative("x").Simplify()
			if !got.Equal(tt.want) {
				t.Errorf("Derivative().Simplify() mismatch (-want +got):\n%s", diff(tt.want, got))
			}
		})
	}
}
