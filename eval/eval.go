// Package eval computes numeric samples of an expression for plotting.
//
// Evaluation substitutes a vector of samples for one designated variable and
// applies ordinary float64 arithmetic elementwise. Domain errors (division
// by zero, log of a non-positive value) do not fail evaluation: they flow
// through as NaN or infinite values so a curve can have isolated gaps. The
// only failure is a free variable other than the designated one.
package eval

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/derivelab/derive/debug"
	"github.com/derivelab/derive/expr"
)

var (
	errInternal = errors.New("internal error")

	ErrFreeVariable = errors.New("free variable")
)

// Evaluate computes one result per sample in xs, substituting xs for the
// variable identified by v.
func Evaluate[ID comparable](e *expr.Expr[ID], v ID, xs []float64) ([]float64, error) {
	res, err := evaluate(e, v, xs)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval over %d samples: %v\n", len(xs), res)
	}
	return res, nil
}

func evaluate[ID comparable](e *expr.Expr[ID], v ID, xs []float64) ([]float64, error) {
	switch e.Kind {
	case expr.SumKind:
		out := make([]float64, len(xs))
		for _, t := range e.Args {
			ys, err := evaluate(t, v, xs)
			if err != nil {
				return nil, err
			}
			for i, y := range ys {
				out[i] += y
			}
		}
		return out, nil
	case expr.ProductKind:
		out := make([]float64, len(xs))
		for i := range out {
			out[i] = 1
		}
		for _, f := range e.Args {
			ys, err := evaluate(f, v, xs)
			if err != nil {
				return nil, err
			}
			for i, y := range ys {
				out[i] *= y
			}
		}
		return out, nil
	case expr.QuotientKind:
		return zip(e, v, xs, func(a, b float64) float64 { return a / b })
	case expr.PowerKind:
		return zip(e, v, xs, math.Pow)
	case expr.ExpKind:
		return apply(e, v, xs, math.Exp)
	case expr.LogKind:
		return apply(e, v, xs, math.Log)
	case expr.VarKind:
		if e.Var != v {
			return nil, fmt.Errorf("%w: %v", ErrFreeVariable, e.Var)
		}
		out := make([]float64, len(xs))
		copy(out, xs)
		return out, nil
	case expr.IntKind:
		y, _ := new(big.Float).SetInt(e.Int).Float64()
		out := make([]float64, len(xs))
		for i := range out {
			out[i] = y
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", errInternal, e.Kind)
	}
}

func zip[ID comparable](e *expr.Expr[ID], v ID, xs []float64, f func(a, b float64) float64) ([]float64, error) {
	as, err := evaluate(e.Args[0], v, xs)
	if err != nil {
		return nil, err
	}
	bs, err := evaluate(e.Args[1], v, xs)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(xs))
	for i := range out {
		out[i] = f(as[i], bs[i])
	}
	return out, nil
}

func apply[ID comparable](e *expr.Expr[ID], v ID, xs []float64, f func(float64) float64) ([]float64, error) {
	ys, err := evaluate(e.Operand(), v, xs)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(xs))
	for i, y := range ys {
		out[i] = f(y)
	}
	return out, nil
}
