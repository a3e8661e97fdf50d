package expr

import (
	"math"
	"math/big"
)

// Reduce maps a tree to its canonical form. Reduction is idempotent and
// total: constant folding, fraction lowering, flattening, and degenerate
// aggregate collapse, applied bottom-up. Like-term collection is the job of
// Simplify, not Reduce; a Sum of two identical subtrees passes through
// unchanged here.
func (e *Expr[ID]) Reduce() *Expr[ID] {
	switch e.Kind {
	case SumKind:
		terms := reduceFlatten(e.Args, SumKind)
		sum := new(big.Int)
		rest := make([]*Expr[ID], 0, len(terms))
		for _, t := range terms {
			if t.Kind == IntKind {
				sum.Add(sum, t.Int)
				continue
			}
			rest = append(rest, t)
		}
		if sum.Sign() != 0 {
			rest = append(rest, FromBig[ID](sum))
		}
		return collapse(rest, SumKind)
	case ProductKind:
		factors := reduceFlatten(e.Args, ProductKind)
		prod := big.NewInt(1)
		rest := make([]*Expr[ID], 0, len(factors))
		for _, f := range factors {
			if f.Kind == IntKind {
				prod.Mul(prod, f.Int)
				// a zero factor annihilates the whole product,
				// unreduced siblings included
				if prod.Sign() == 0 {
					return FromInt[ID](0)
				}
				continue
			}
			rest = append(rest, f)
		}
		if !isOne(prod) || len(rest) == 0 {
			rest = append(rest, FromBig[ID](prod))
		}
		return collapse(rest, ProductKind)
	case QuotientKind:
		num := e.Num().Reduce()
		den := e.Den().Reduce()
		if num.Kind == IntKind && den.Kind == IntKind {
			return reduceFraction[ID](num.Int, den.Int)
		}
		return Quotient(num, den)
	case PowerKind:
		base := e.Num().Reduce()
		exponent := e.Den().Reduce()
		if base.Kind == IntKind && exponent.Kind == IntKind && foldableExponent(exponent.Int) {
			return &Expr[ID]{Kind: IntKind, Int: new(big.Int).Exp(base.Int, exponent.Int, nil)}
		}
		return Power(base, exponent)
	case ExpKind:
		return Exp(e.Operand().Reduce())
	case LogKind:
		return Log(e.Operand().Reduce())
	default:
		return e.Clone()
	}
}

// reduceFlatten reduces each child and inlines children of the parent's own
// kind. Reduced children are themselves flat, so one splice suffices.
func reduceFlatten[ID comparable](args []*Expr[ID], kind Kind) []*Expr[ID] {
	res := make([]*Expr[ID], 0, len(args))
	for _, a := range args {
		r := a.Reduce()
		if r.Kind == kind {
			res = append(res, r.Args...)
			continue
		}
		res = append(res, r)
	}
	return res
}

// collapse applies the degenerate aggregate rules: zero children become the
// operator identity, a single child is unwrapped.
func collapse[ID comparable](args []*Expr[ID], kind Kind) *Expr[ID] {
	switch len(args) {
	case 0:
		if kind == ProductKind {
			return FromInt[ID](1)
		}
		return FromInt[ID](0)
	case 1:
		return args[0]
	}
	return &Expr[ID]{Kind: kind, Args: args}
}

// reduceFraction lowers an integer fraction: gcd division, denominator sign
// normalization, and collapse to a bare integer when the denominator is 1.
func reduceFraction[ID comparable](num, den *big.Int) *Expr[ID] {
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if gcd.Sign() != 0 {
		n.Quo(n, gcd)
		d.Quo(d, gcd)
	}
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	if isOne(d) {
		return &Expr[ID]{Kind: IntKind, Int: n}
	}
	return Quotient(&Expr[ID]{Kind: IntKind, Int: n}, &Expr[ID]{Kind: IntKind, Int: d})
}

// foldableExponent bounds exact exponentiation: non-negative and machine
// sized. Negative or oversized exponents stay symbolic.
func foldableExponent(e *big.Int) bool {
	return e.Sign() >= 0 && e.IsUint64() && e.Uint64() <= math.MaxUint32
}

func isOne(v *big.Int) bool {
	return v.IsInt64() && v.Int64() == 1
}
