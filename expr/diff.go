package expr

import "math/big"

// Derivative produces the derivative of e with respect to the variable
// identity v. The result is deliberately unreduced (a Sum of one term for a
// Sum of one term); callers normalize it with Reduce or Simplify.
// Differentiation is total: every kind is handled and no input fails.
func (e *Expr[ID]) Derivative(v ID) *Expr[ID] {
	switch e.Kind {
	case VarKind:
		if e.Var == v {
			return FromInt[ID](1)
		}
		return FromInt[ID](0)
	case IntKind:
		return FromInt[ID](0)
	case SumKind:
		terms := make([]*Expr[ID], len(e.Args))
		for i, t := range e.Args {
			terms[i] = t.Derivative(v)
		}
		return Sum(terms...)
	case ProductKind:
		// generalized product rule: one summand per factor, with the
		// differentiated factor in place and the others untouched
		terms := make([]*Expr[ID], len(e.Args))
		for i := range e.Args {
			factors := make([]*Expr[ID], 0, len(e.Args))
			factors = append(factors, e.Args[i].Derivative(v))
			for j, f := range e.Args {
				if j != i {
					factors = append(factors, f.Clone())
				}
			}
			terms[i] = Product(factors...)
		}
		return Sum(terms...)
	case QuotientKind:
		num, den := e.Num(), e.Den()
		return Quotient(
			Sum(
				Product(num.Derivative(v), den.Clone()),
				Product(num.Clone(), Negate(den.Derivative(v))),
			),
			Product(den.Clone(), den.Clone()),
		)
	case PowerKind:
		return e.powerDerivative(v)
	case ExpKind:
		t := e.Operand()
		return Product(Exp(t.Clone()), t.Derivative(v))
	case LogKind:
		t := e.Operand()
		return Quotient(t.Derivative(v), t.Clone())
	default:
		return FromInt[ID](0)
	}
}

// powerDerivative applies the three mutually exclusive power cases, checked
// in priority order: literal base, literal exponent, then the general
// logarithmic-differentiation formula.
func (e *Expr[ID]) powerDerivative(v ID) *Expr[ID] {
	base, exponent := e.Num(), e.Den()
	switch {
	case base.Kind == IntKind:
		// constant base: d(b^g) = b^g * ln(b) * g'
		return Product(
			Power(base.Clone(), exponent.Clone()),
			Log(base.Clone()),
			exponent.Derivative(v),
		)
	case exponent.Kind == IntKind:
		if exponent.Int.Sign() == 0 {
			return FromInt[ID](0)
		}
		if exponent.IsInt(1) {
			return base.Derivative(v)
		}
		// power rule: d(f^e) = e * f^(e-1) * f'
		next := FromBig[ID](exponent.Int)
		next.Int.Sub(next.Int, big.NewInt(1))
		return Product(
			exponent.Clone(),
			Power(base.Clone(), next),
			base.Derivative(v),
		)
	default:
		// d(f^g) = f^g * (g'*ln(f) + g*(f'/f))
		return Product(
			Power(base.Clone(), exponent.Clone()),
			Sum(
				Product(exponent.Derivative(v), Log(base.Clone())),
				Product(exponent.Clone(), Quotient(base.Derivative(v), base.Clone())),
			),
		)
	}
}
