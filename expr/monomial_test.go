package expr

import (
	"math/big"
	"testing"
)

func TestCollectFactors(t *testing.T) {
	tests := []struct {
		name string
		in   []*Expr[string]
		want *Expr[string]
	}{
		{"repeated base",
			[]*Expr[string]{x(), x()},
			Power(x(), FromInt[string](2))},
		{"base joins power",
			[]*Expr[string]{x(), Power(x(), FromInt[string](2))},
			Power(x(), FromInt[string](3))},
		{"integers and fractions fold",
			[]*Expr[string]{FromInt[string](2), x(), Quotient(FromInt[string](1), FromInt[string](2))},
			x()},
		{"multiplier renders last",
			[]*Expr[string]{FromInt[string](3), x(), y()},
			Product(x(), y(), FromInt[string](3))},
		{"fractional multiplier",
			[]*Expr[string]{x(), Quotient(FromInt[string](1), FromInt[string](3))},
			Product(x(), Quotient(FromInt[string](1), FromInt[string](3)))},
		{"zero annihilates",
			[]*Expr[string]{x(), FromInt[string](0), y()},
			FromInt[string](0)},
		{"nested product splices",
			[]*Expr[string]{Product(x(), FromInt[string](2)), x()},
			Product(Power(x(), FromInt[string](2)), FromInt[string](2))},
		{"exponents cancel",
			[]*Expr[string]{Power(x(), FromInt[string](2)), Power(x(), FromInt[string](-2))},
			FromInt[string](1)},
		{"symbolic quotient is a base",
			[]*Expr[string]{Quotient(FromInt[string](1), x()), Quotient(FromInt[string](1), x())},
			Power(Quotient(FromInt[string](1), x()), FromInt[string](2))},
		{"empty input is one",
			nil,
			FromInt[string](1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectFactors(tt.in).Expr()
			if !got.Equal(tt.want) {
				t.Errorf("CollectFactors().Expr() mismatch (-want +got):\n%s", diff(tt.want, got))
			}
		})
	}
}

func TestMonomialMultiplier(t *testing.T) {
	m := CollectFactors([]*Expr[string]{
		FromInt[string](6), x(), Quotient(FromInt[string](1), FromInt[string](4)),
	})
	want := big.NewRat(3, 2)
	if got := m.Multiplier(); got.Cmp(want) != 0 {
		t.Errorf("Multiplier() = %v, want %v", got, want)
	}
	// the returned value is a copy
	m.Multiplier().SetInt64(0)
	if got := m.Multiplier(); got.Cmp(want) != 0 {
		t.Errorf("Multiplier() exposed internal state: %v", got)
	}
}
