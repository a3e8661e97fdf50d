package expr

import (
	"math/big"
)

// A Monomial is the collected form of a product: an exact rational
// multiplier together with base expressions raised to integer exponents.
// Bases are matched structurally, so both x*x^2 and (x+1)*(x+1) collect.
// Base order is first occurrence, keeping collection deterministic without
// requiring an ordering on variable identities.
type Monomial[ID comparable] struct {
	multiplier *big.Rat
	factors    []monoFactor[ID]
}

type monoFactor[ID comparable] struct {
	base     *Expr[ID]
	exponent *big.Int
}

// CollectFactors builds a Monomial from product factors. Factors are
// expected to be individually reduced; nested products are spliced, integer
// literals and integer fractions accumulate into the multiplier, and
// integer-exponent powers merge with equal bases.
func CollectFactors[ID comparable](factors []*Expr[ID]) *Monomial[ID] {
	m := &Monomial[ID]{multiplier: new(big.Rat).SetInt64(1)}
	for _, f := range factors {
		m.mulFactor(f)
		if m.multiplier.Sign() == 0 {
			return &Monomial[ID]{multiplier: new(big.Rat)}
		}
	}
	return m
}

func (m *Monomial[ID]) mulFactor(f *Expr[ID]) {
	switch f.Kind {
	case ProductKind:
		for _, a := range f.Args {
			m.mulFactor(a)
		}
	case IntKind:
		m.multiplier.Mul(m.multiplier, new(big.Rat).SetInt(f.Int))
	case QuotientKind:
		if f.Num().Kind == IntKind && f.Den().Kind == IntKind && f.Den().Int.Sign() != 0 {
			m.multiplier.Mul(m.multiplier, new(big.Rat).SetFrac(f.Num().Int, f.Den().Int))
			return
		}
		m.addBase(f, big.NewInt(1))
	case PowerKind:
		if f.Den().Kind == IntKind {
			m.addBase(f.Num(), f.Den().Int)
			return
		}
		m.addBase(f, big.NewInt(1))
	default:
		m.addBase(f, big.NewInt(1))
	}
}

func (m *Monomial[ID]) addBase(base *Expr[ID], exponent *big.Int) {
	for i := range m.factors {
		if m.factors[i].base.Equal(base) {
			m.factors[i].exponent = new(big.Int).Add(m.factors[i].exponent, exponent)
			return
		}
	}
	m.factors = append(m.factors, monoFactor[ID]{base: base.Clone(), exponent: new(big.Int).Set(exponent)})
}

// Multiplier returns a copy of the rational scalar part.
func (m *Monomial[ID]) Multiplier() *big.Rat {
	return new(big.Rat).Set(m.multiplier)
}

// Expr renders the Monomial back as a canonical product: collected bases in
// first-occurrence order, multiplier last, with the usual degenerate
// collapses applied.
func (m *Monomial[ID]) Expr() *Expr[ID] {
	if m.multiplier.Sign() == 0 {
		return FromInt[ID](0)
	}
	factors := make([]*Expr[ID], 0, len(m.factors)+1)
	for _, f := range m.factors {
		switch {
		case f.exponent.Sign() == 0:
			// x^0 collapses out of the product
		case isOne(f.exponent):
			factors = append(factors, f.base)
		default:
			factors = append(factors, Power(f.base, FromBig[ID](f.exponent)))
		}
	}
	if c := ratExpr[ID](m.multiplier); c != nil {
		factors = append(factors, c)
	}
	return collapse(factors, ProductKind)
}

// ratExpr converts a rational coefficient to its literal form, or nil for
// the multiplicative identity.
func ratExpr[ID comparable](r *big.Rat) *Expr[ID] {
	if r.IsInt() {
		if isOne(r.Num()) {
			return nil
		}
		return FromBig[ID](r.Num())
	}
	return Quotient(FromBig[ID](r.Num()), FromBig[ID](r.Denom()))
}
