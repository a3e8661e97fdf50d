// Package parse provides formula parsing support.
//
// The grammar has four precedence levels, loosest first: additive terms
// joined by + and -, multiplicative chains of * and /, a single optional ^,
// and primaries (function applications, literals, variables, parenthesized
// groups). Mixed * and / chains associate left, so a*b/c is (a*b)/c.
// Subtraction is not first class: a - b parses to a + b*-1 through the
// expr.Negate helper.
package parse

import (
	"fmt"
	"math/big"

	"github.com/derivelab/derive/debug"
	"github.com/derivelab/derive/expr"
	"github.com/derivelab/derive/token"
)

// Parse converts source text to a name-keyed expression tree. It fails, with
// no partial result, when the text is not a single well formed formula.
func Parse(d []byte, opts ...ParseOption) (*expr.Expr[string], error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Parse() {
		for i := range toks {
			debug.Logf("token %d: %s\n", i, toks[i].Info())
		}
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	p := &parser{toks: toks, opts: pOpts}
	res, err := p.additive()
	if err != nil {
		return nil, err
	}
	if p.i != len(p.toks) {
		t := &p.toks[p.i]
		return nil, fmt.Errorf("%w: unexpected %q %s", ErrParse, t.String(), t.Pos)
	}
	return res, nil
}

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) at(t token.TokenType) bool {
	tok := p.peek()
	return tok != nil && tok.Type == t
}

func (p *parser) eat(t token.TokenType) *token.Token {
	if !p.at(t) {
		return nil
	}
	tok := &p.toks[p.i]
	p.i++
	return tok
}

func (p *parser) trackPos(node *expr.Expr[string], pos *token.Pos) *expr.Expr[string] {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[node] = pos
	}
	return node
}

func (p *parser) endErr() error {
	if len(p.toks) == 0 {
		return fmt.Errorf("%w: empty input", ErrParse)
	}
	return fmt.Errorf("%w: premature end of formula %s", ErrParse, p.toks[len(p.toks)-1].Pos)
}

// additive parses one-or-more multiplicative terms joined by + or -. A term
// joined by - is negated rather than subtracted. A leading - negates the
// first term, except when it introduces a signed literal, which the primary
// level owns (that keeps canonical renders like "x * -1" round-tripping).
func (p *parser) additive() (*expr.Expr[string], error) {
	negate := false
	if p.at(token.TMinus) && !p.nextIsInteger() {
		p.i++
		negate = true
	}
	first, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	if negate {
		first = expr.Negate(first)
	}
	terms := []*expr.Expr[string]{first}
	for {
		switch {
		case p.eat(token.TPlus) != nil:
			t, err := p.multiplicative()
			if err != nil {
				return nil, err
			}
			terms = append(terms, t)
		case p.eat(token.TMinus) != nil:
			t, err := p.multiplicative()
			if err != nil {
				return nil, err
			}
			terms = append(terms, expr.Negate(t))
		default:
			if len(terms) == 1 {
				return terms[0], nil
			}
			return expr.Sum(terms...), nil
		}
	}
}

func (p *parser) nextIsInteger() bool {
	return p.i+1 < len(p.toks) && p.toks[p.i+1].Type == token.TInteger
}

// multiplicative parses a left-associative chain of power-level operands
// joined by * and /.
func (p *parser) multiplicative() (*expr.Expr[string], error) {
	acc, err := p.power()
	if err != nil {
		return nil, err
	}
	factors := []*expr.Expr[string]{acc}
	flush := func() *expr.Expr[string] {
		if len(factors) == 1 {
			return factors[0]
		}
		return expr.Product(factors...)
	}
	for {
		switch {
		case p.eat(token.TStar) != nil:
			f, err := p.power()
			if err != nil {
				return nil, err
			}
			factors = append(factors, f)
		case p.eat(token.TSlash) != nil:
			den, err := p.power()
			if err != nil {
				return nil, err
			}
			factors = []*expr.Expr[string]{expr.Quotient(flush(), den)}
		default:
			return flush(), nil
		}
	}
}

// power parses primary [^ primary]. The exponent is itself a primary, so
// a^b^c needs parentheses.
func (p *parser) power() (*expr.Expr[string], error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.eat(token.TCaret) == nil {
		return base, nil
	}
	exponent, err := p.primary()
	if err != nil {
		return nil, err
	}
	return expr.Power(base, exponent), nil
}

func (p *parser) primary() (*expr.Expr[string], error) {
	t := p.peek()
	if t == nil {
		return nil, p.endErr()
	}
	switch t.Type {
	case token.TMinus:
		p.i++
		lit := p.eat(token.TInteger)
		if lit == nil {
			return nil, fmt.Errorf("%w: expected integer after sign %s", ErrParse, t.Pos)
		}
		e, err := integer(lit)
		if err != nil {
			return nil, err
		}
		return p.trackPos(expr.Negate(e), t.Pos), nil
	case token.TInteger:
		p.i++
		e, err := integer(t)
		if err != nil {
			return nil, err
		}
		return p.trackPos(e, t.Pos), nil
	case token.TIdent:
		p.i++
		switch t.String() {
		case "exp":
			if p.at(token.TLParen) {
				arg, err := p.parenthesized()
				if err != nil {
					return nil, err
				}
				return p.trackPos(expr.Exp(arg), t.Pos), nil
			}
		case "log":
			if p.at(token.TLParen) {
				arg, err := p.parenthesized()
				if err != nil {
					return nil, err
				}
				return p.trackPos(expr.Log(arg), t.Pos), nil
			}
		}
		return p.trackPos(expr.FromVar(t.String()), t.Pos), nil
	case token.TLParen:
		arg, err := p.parenthesized()
		if err != nil {
			return nil, err
		}
		return arg, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %q %s", ErrParse, t.String(), t.Pos)
	}
}

func (p *parser) parenthesized() (*expr.Expr[string], error) {
	open := p.eat(token.TLParen)
	if open == nil {
		t := p.peek()
		if t == nil {
			return nil, p.endErr()
		}
		return nil, fmt.Errorf("%w: expected ( got %q %s", ErrParse, t.String(), t.Pos)
	}
	arg, err := p.additive()
	if err != nil {
		return nil, err
	}
	if p.eat(token.TRParen) == nil {
		return nil, fmt.Errorf("%w: unbalanced %s", ErrParse, open.Pos)
	}
	return arg, nil
}

func integer(t *token.Token) (*expr.Expr[string], error) {
	e := &expr.Expr[string]{Kind: expr.IntKind}
	v, ok := new(big.Int).SetString(string(t.Bytes), 10)
	if !ok {
		return nil, fmt.Errorf("%w: invalid integer %q %s", ErrParse, t.String(), t.Pos)
	}
	e.Int = v
	return e, nil
}
