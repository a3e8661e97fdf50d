package parse

import (
	"github.com/derivelab/derive/expr"
	"github.com/derivelab/derive/token"
)

type ParseOption func(*parseOpts)

type parseOpts struct {
	positions map[*expr.Expr[string]]*token.Pos
}

// Positions records the source position of each node the parser builds into
// m. Useful for tooling; the core pipeline does not need it.
func Positions(m map[*expr.Expr[string]]*token.Pos) ParseOption {
	return func(po *parseOpts) { po.positions = m }
}
