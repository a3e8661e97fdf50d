// Package encode renders expression trees as text.
//
// The plain text format uses exactly the infix syntax package parse accepts,
// so any canonical tree round-trips: parse(String(t)) is structurally equal
// to t. The LaTeX format is for math typesetting and does not round-trip.
package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/derivelab/derive/expr"
	"github.com/derivelab/derive/format"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format format.Format

	Color func(expr.Kind, ColorAttr, string) string
}

// Binding strength levels, loosest first, mirroring the grammar's levels.
const (
	precAdd = iota
	precMul
	precPow
	precAtom
)

func prec[ID comparable](e *expr.Expr[ID]) int {
	switch e.Kind {
	case expr.SumKind:
		return precAdd
	case expr.ProductKind, expr.QuotientKind:
		return precMul
	case expr.PowerKind:
		return precPow
	default:
		return precAtom
	}
}

// Encode writes the rendering of e to w.
func Encode(e *expr.Expr[string], w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.TextFormat:
		return text(e, w, es, precAdd)
	case format.LaTeXFormat:
		return latex(e, w, es, precAdd)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

// String renders e into a string.
func String(e *expr.Expr[string], opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(e, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(e *expr.Expr[string], opts ...EncodeOption) string {
	s, err := String(e, opts...)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(s)
}

func text(e *expr.Expr[string], w io.Writer, es *EncState, minPrec int) error {
	if prec(e) < minPrec {
		if err := writeColored(w, es, e.Kind, ParenColor, "("); err != nil {
			return err
		}
		if err := text(e, w, es, precAdd); err != nil {
			return err
		}
		return writeColored(w, es, e.Kind, ParenColor, ")")
	}
	switch e.Kind {
	case expr.SumKind:
		for i, t := range e.Args {
			if i != 0 {
				if err := writeColored(w, es, e.Kind, SepColor, " + "); err != nil {
					return err
				}
			}
			if err := text(t, w, es, precMul); err != nil {
				return err
			}
		}
		return nil
	case expr.ProductKind:
		for i, f := range e.Args {
			op := precMul
			if i != 0 {
				if err := writeColored(w, es, e.Kind, SepColor, " * "); err != nil {
					return err
				}
				op = precPow
			}
			if err := text(f, w, es, op); err != nil {
				return err
			}
		}
		return nil
	case expr.QuotientKind:
		// the numerator re-folds without parentheses under the
		// left-associative grammar; the denominator does not
		if err := text(e.Num(), w, es, precMul); err != nil {
			return err
		}
		if err := writeColored(w, es, e.Kind, SepColor, " / "); err != nil {
			return err
		}
		return text(e.Den(), w, es, precPow)
	case expr.PowerKind:
		if err := text(e.Num(), w, es, precAtom); err != nil {
			return err
		}
		if err := writeColored(w, es, e.Kind, SepColor, " ^ "); err != nil {
			return err
		}
		return text(e.Den(), w, es, precAtom)
	case expr.ExpKind, expr.LogKind:
		name := "exp"
		if e.Kind == expr.LogKind {
			name = "log"
		}
		if err := writeColored(w, es, e.Kind, FuncColor, name); err != nil {
			return err
		}
		if err := writeColored(w, es, e.Kind, ParenColor, "("); err != nil {
			return err
		}
		if err := text(e.Operand(), w, es, precAdd); err != nil {
			return err
		}
		return writeColored(w, es, e.Kind, ParenColor, ")")
	case expr.VarKind:
		return writeColored(w, es, e.Kind, ValueColor, e.Var)
	case expr.IntKind:
		return writeColored(w, es, e.Kind, ValueColor, e.Int.String())
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrEncoding, e.Kind)
	}
}

func latex(e *expr.Expr[string], w io.Writer, es *EncState, minPrec int) error {
	if prec(e) < minPrec && e.Kind != expr.QuotientKind {
		if err := writeColored(w, es, e.Kind, ParenColor, `\left(`); err != nil {
			return err
		}
		if err := latex(e, w, es, precAdd); err != nil {
			return err
		}
		return writeColored(w, es, e.Kind, ParenColor, `\right)`)
	}
	switch e.Kind {
	case expr.SumKind:
		for i, t := range e.Args {
			if i != 0 {
				if err := writeColored(w, es, e.Kind, SepColor, " + "); err != nil {
					return err
				}
			}
			if err := latex(t, w, es, precMul); err != nil {
				return err
			}
		}
		return nil
	case expr.ProductKind:
		for i, f := range e.Args {
			if i != 0 {
				if err := writeColored(w, es, e.Kind, SepColor, ` \cdot `); err != nil {
					return err
				}
			}
			if err := latex(f, w, es, precMul); err != nil {
				return err
			}
		}
		return nil
	case expr.QuotientKind:
		if err := writeColored(w, es, e.Kind, SepColor, `\displaystyle \frac{`); err != nil {
			return err
		}
		if err := latex(e.Num(), w, es, precAdd); err != nil {
			return err
		}
		if err := writeColored(w, es, e.Kind, SepColor, "}{"); err != nil {
			return err
		}
		if err := latex(e.Den(), w, es, precAdd); err != nil {
			return err
		}
		return writeColored(w, es, e.Kind, SepColor, "}")
	case expr.PowerKind:
		if err := latex(e.Num(), w, es, precAtom); err != nil {
			return err
		}
		if err := writeColored(w, es, e.Kind, SepColor, "^{"); err != nil {
			return err
		}
		if err := latex(e.Den(), w, es, precAdd); err != nil {
			return err
		}
		return writeColored(w, es, e.Kind, SepColor, "}")
	case expr.ExpKind:
		if err := writeColored(w, es, e.Kind, FuncColor, "e^{"); err != nil {
			return err
		}
		if err := latex(e.Operand(), w, es, precAdd); err != nil {
			return err
		}
		return writeColored(w, es, e.Kind, FuncColor, "}")
	case expr.LogKind:
		if err := writeColored(w, es, e.Kind, FuncColor, `\ln\left(`); err != nil {
			return err
		}
		if err := latex(e.Operand(), w, es, precAdd); err != nil {
			return err
		}
		return writeColored(w, es, e.Kind, FuncColor, `\right)`)
	case expr.VarKind:
		return writeColored(w, es, e.Kind, ValueColor, e.Var)
	case expr.IntKind:
		return writeColored(w, es, e.Kind, ValueColor, e.Int.String())
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrEncoding, e.Kind)
	}
}

func writeColored(w io.Writer, es *EncState, k expr.Kind, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(k, a, s)
	}
	_, err := w.Write([]byte(s))
	return err
}
