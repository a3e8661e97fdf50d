package expr

import (
	"math/big"
)

// Simplify is Reduce plus like-term and like-factor collection: products
// collect into monomials (x * x^2 becomes x^3), sums combine terms whose
// non-scalar parts are structurally equal (x + 1 - x becomes 1). Simplify is
// idempotent and keeps the canonical ordering rules of Reduce: non-scalar
// children in first-occurrence order, the folded scalar last.
func (e *Expr[ID]) Simplify() *Expr[ID] {
	switch e.Kind {
	case SumKind:
		return simplifySum(simplifyFlatten(e.Args, SumKind))
	case ProductKind:
		return CollectFactors(simplifyFlatten(e.Args, ProductKind)).Expr()
	case QuotientKind:
		num := e.Num().Simplify()
		den := e.Den().Simplify()
		if num.Kind == IntKind && den.Kind == IntKind {
			return reduceFraction[ID](num.Int, den.Int)
		}
		return Quotient(num, den)
	case PowerKind:
		base := e.Num().Simplify()
		exponent := e.Den().Simplify()
		if base.Kind == IntKind && exponent.Kind == IntKind && foldableExponent(exponent.Int) {
			return &Expr[ID]{Kind: IntKind, Int: new(big.Int).Exp(base.Int, exponent.Int, nil)}
		}
		return Power(base, exponent)
	case ExpKind:
		return Exp(e.Operand().Simplify())
	case LogKind:
		return Log(e.Operand().Simplify())
	default:
		return e.Clone()
	}
}

func simplifyFlatten[ID comparable](args []*Expr[ID], kind Kind) []*Expr[ID] {
	res := make([]*Expr[ID], 0, len(args))
	for _, a := range args {
		s := a.Simplify()
		if s.Kind == kind {
			res = append(res, s.Args...)
			continue
		}
		res = append(res, s)
	}
	return res
}

// sumTerm is one collected summand: a rational coefficient and the term's
// non-scalar kernel (nil for pure constants).
type sumTerm[ID comparable] struct {
	coefficient *big.Rat
	kernel      *Expr[ID]
}

func simplifySum[ID comparable](terms []*Expr[ID]) *Expr[ID] {
	collected := make([]*sumTerm[ID], 0, len(terms))
	constant := new(big.Rat)
	for _, t := range terms {
		c, kernel := splitTerm(t)
		if kernel == nil {
			constant.Add(constant, c)
			continue
		}
		merged := false
		for _, ct := range collected {
			if ct.kernel.Equal(kernel) {
				ct.coefficient.Add(ct.coefficient, c)
				merged = true
				break
			}
		}
		if !merged {
			collected = append(collected, &sumTerm[ID]{coefficient: c, kernel: kernel})
		}
	}
	out := make([]*Expr[ID], 0, len(collected)+1)
	for _, ct := range collected {
		if ct.coefficient.Sign() == 0 {
			continue
		}
		out = append(out, scaleTerm(ct.kernel, ct.coefficient))
	}
	if constant.Sign() != 0 {
		if constant.IsInt() {
			out = append(out, FromBig[ID](constant.Num()))
		} else {
			out = append(out, Quotient(FromBig[ID](constant.Num()), FromBig[ID](constant.Denom())))
		}
	}
	return collapse(out, SumKind)
}

// splitTerm factors a summand into rational scalar times kernel. The kernel
// is nil when the whole term is scalar.
func splitTerm[ID comparable](t *Expr[ID]) (*big.Rat, *Expr[ID]) {
	switch t.Kind {
	case IntKind:
		return new(big.Rat).SetInt(t.Int), nil
	case QuotientKind:
		if t.Num().Kind == IntKind && t.Den().Kind == IntKind && t.Den().Int.Sign() != 0 {
			return new(big.Rat).SetFrac(t.Num().Int, t.Den().Int), nil
		}
		return new(big.Rat).SetInt64(1), t
	case ProductKind:
		coefficient := new(big.Rat).SetInt64(1)
		rest := make([]*Expr[ID], 0, len(t.Args))
		for _, f := range t.Args {
			switch {
			case f.Kind == IntKind:
				coefficient.Mul(coefficient, new(big.Rat).SetInt(f.Int))
			case f.Kind == QuotientKind && f.Num().Kind == IntKind && f.Den().Kind == IntKind && f.Den().Int.Sign() != 0:
				coefficient.Mul(coefficient, new(big.Rat).SetFrac(f.Num().Int, f.Den().Int))
			default:
				rest = append(rest, f)
			}
		}
		if len(rest) == 0 {
			return coefficient, nil
		}
		return coefficient, collapse(rest, ProductKind)
	default:
		return new(big.Rat).SetInt64(1), t
	}
}

// scaleTerm rebuilds coefficient * kernel in canonical shape, scalar last.
func scaleTerm[ID comparable](kernel *Expr[ID], coefficient *big.Rat) *Expr[ID] {
	c := ratExpr[ID](coefficient)
	if c == nil {
		return kernel
	}
	if kernel.Kind == ProductKind {
		args := make([]*Expr[ID], 0, len(kernel.Args)+1)
		args = append(args, kernel.Args...)
		args = append(args, c)
		return Product(args...)
	}
	return Product(kernel, c)
}
