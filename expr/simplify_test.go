package expr

import (
	"testing"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		name string
		in   *Expr[string]
		want *Expr[string]
	}{
		{"like terms combine",
			Sum(x(), x()),
			Product(x(), FromInt[string](2))},
		{"terms cancel to the constant",
			Sum(x(), FromInt[string](1), Product(x(), FromInt[string](-1))),
			FromInt[string](1)},
		{"terms cancel to zero",
			Sum(Product(x(), FromInt[string](2)), Product(x(), FromInt[string](-2))),
			FromInt[string](0)},
		{"coefficients add",
			Sum(Product(x(), FromInt[string](2)), Product(x(), FromInt[string](3))),
			Product(x(), FromInt[string](5))},
		{"fractional coefficient",
			Sum(x(), Product(x(), Quotient(FromInt[string](-1), FromInt[string](2)))),
			Product(x(), Quotient(FromInt[string](1), FromInt[string](2)))},
		{"constant fractions add",
			Sum(Quotient(FromInt[string](1), FromInt[string](2)), Quotient(FromInt[string](1), FromInt[string](3))),
			Quotient(FromInt[string](5), FromInt[string](6))},
		{"like factors collect",
			Product(x(), Power(x(), FromInt[string](2))),
			Power(x(), FromInt[string](3))},
		{"compound bases collect",
			Product(Sum(x(), FromInt[string](1)), Sum(x(), FromInt[string](1))),
			Power(Sum(x(), FromInt[string](1)), FromInt[string](2))},
		{"nested sums splice before collection",
			Sum(Sum(x(), y()), Product(y(), FromInt[string](-1))),
			x()},
		{"reduce behavior carries over",
			Sum(FromInt[string](1), FromInt[string](2), Product(x(), FromInt[string](0))),
			FromInt[string](3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Simplify()
			if !got.Equal(tt.want) {
				t.Errorf("Simplify() mismatch (-want +got):\n%s", diff(tt.want, got))
			}
			again := got.Simplify()
			if !again.Equal(got) {
				t.Errorf("Simplify() not idempotent (-first +second):\n%s", diff(got, again))
			}
		})
	}
}
