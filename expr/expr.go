package expr

import (
	"math/big"
)

type Kind int

const (
	SumKind Kind = iota
	ProductKind
	QuotientKind
	PowerKind
	ExpKind
	LogKind
	VarKind
	IntKind
)

func (k Kind) String() string {
	return map[Kind]string{
		SumKind:      "Sum",
		ProductKind:  "Product",
		QuotientKind: "Quotient",
		PowerKind:    "Power",
		ExpKind:      "Exp",
		LogKind:      "Log",
		VarKind:      "Var",
		IntKind:      "Int",
	}[k]
}

func Kinds() []Kind {
	return []Kind{
		SumKind,
		ProductKind,
		QuotientKind,
		PowerKind,
		ExpKind,
		LogKind,
		VarKind,
		IntKind,
	}
}

// Expr is a single expression node. The Kind tag selects which fields are
// meaningful: Args holds the n operands of a Sum or Product, the ordered
// (numerator, denominator) pair of a Quotient, the (base, exponent) pair of
// a Power, and the single operand of Exp and Log. Var and Int carry the
// variable identity and the literal value of the two leaf kinds.
type Expr[ID comparable] struct {
	Kind Kind
	Args []*Expr[ID]

	Var ID
	Int *big.Int
}

// Sum builds an addition of terms. An empty Sum denotes 0.
func Sum[ID comparable](terms ...*Expr[ID]) *Expr[ID] {
	return &Expr[ID]{Kind: SumKind, Args: terms}
}

// Product builds a multiplication of factors. An empty Product denotes 1.
func Product[ID comparable](factors ...*Expr[ID]) *Expr[ID] {
	return &Expr[ID]{Kind: ProductKind, Args: factors}
}

// Quotient builds the division of num by den.
func Quotient[ID comparable](num, den *Expr[ID]) *Expr[ID] {
	return &Expr[ID]{Kind: QuotientKind, Args: []*Expr[ID]{num, den}}
}

// Power builds base raised to exponent.
func Power[ID comparable](base, exponent *Expr[ID]) *Expr[ID] {
	return &Expr[ID]{Kind: PowerKind, Args: []*Expr[ID]{base, exponent}}
}

// Exp builds e raised to operand.
func Exp[ID comparable](operand *Expr[ID]) *Expr[ID] {
	return &Expr[ID]{Kind: ExpKind, Args: []*Expr[ID]{operand}}
}

// Log builds the natural logarithm of operand.
func Log[ID comparable](operand *Expr[ID]) *Expr[ID] {
	return &Expr[ID]{Kind: LogKind, Args: []*Expr[ID]{operand}}
}

// FromVar builds a variable node with the given identity.
func FromVar[ID comparable](id ID) *Expr[ID] {
	return &Expr[ID]{Kind: VarKind, Var: id}
}

// FromInt builds an integer literal node.
func FromInt[ID comparable](v int64) *Expr[ID] {
	return &Expr[ID]{Kind: IntKind, Int: big.NewInt(v)}
}

// FromBig builds an integer literal node. The value is copied.
func FromBig[ID comparable](v *big.Int) *Expr[ID] {
	return &Expr[ID]{Kind: IntKind, Int: new(big.Int).Set(v)}
}

// IsInt reports whether e is the integer literal v.
func (e *Expr[ID]) IsInt(v int64) bool {
	return e.Kind == IntKind && e.Int.IsInt64() && e.Int.Int64() == v
}

// Num returns the numerator of a Quotient or the base of a Power.
func (e *Expr[ID]) Num() *Expr[ID] { return e.Args[0] }

// Den returns the denominator of a Quotient or the exponent of a Power.
func (e *Expr[ID]) Den() *Expr[ID] { return e.Args[1] }

// Operand returns the single operand of an Exp or Log node.
func (e *Expr[ID]) Operand() *Expr[ID] { return e.Args[0] }

func (e *Expr[ID]) Clone() *Expr[ID] {
	res := &Expr[ID]{Kind: e.Kind, Var: e.Var}
	if e.Int != nil {
		res.Int = new(big.Int).Set(e.Int)
	}
	if e.Args != nil {
		res.Args = make([]*Expr[ID], len(e.Args))
		for i, a := range e.Args {
			res.Args[i] = a.Clone()
		}
	}
	return res
}

// Equal reports structural equality: same kind and recursively equal
// children in the same order. Sum and Product order is significant here even
// though it is semantically irrelevant; reduce both sides first when
// comparing for mathematical sameness.
func (e *Expr[ID]) Equal(o *Expr[ID]) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Kind != o.Kind {
		return false
	}
	switch e.Kind {
	case VarKind:
		return e.Var == o.Var
	case IntKind:
		return e.Int.Cmp(o.Int) == 0
	}
	if len(e.Args) != len(o.Args) {
		return false
	}
	for i := range e.Args {
		if !e.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Visit walks the tree, calling f twice per node with isPost false before
// descending and true after. Returning dive=false from the pre call skips
// the node's children.
func (e *Expr[ID]) Visit(f func(e *Expr[ID], isPost bool) (bool, error)) error {
	dive, err := f(e, false)
	if err != nil {
		return err
	}
	if dive {
		for _, a := range e.Args {
			if err := a.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(e, true); err != nil {
		return err
	}
	return nil
}

// Variables appends to dst each distinct variable identity in e, in first
// occurrence order, and returns the extended slice.
func (e *Expr[ID]) Variables(dst []ID) []ID {
	e.Visit(func(n *Expr[ID], isPost bool) (bool, error) {
		if isPost || n.Kind != VarKind {
			return true, nil
		}
		for _, id := range dst {
			if id == n.Var {
				return true, nil
			}
		}
		dst = append(dst, n.Var)
		return true, nil
	})
	return dst
}

// Convert maps the identity type of a tree, rebuilding every node. It is the
// bridge between name-keyed trees at the text boundary and interned trees
// elsewhere.
func Convert[A, B comparable](e *Expr[A], f func(A) B) *Expr[B] {
	res := &Expr[B]{Kind: e.Kind}
	switch e.Kind {
	case VarKind:
		res.Var = f(e.Var)
		return res
	case IntKind:
		res.Int = new(big.Int).Set(e.Int)
		return res
	}
	res.Args = make([]*Expr[B], len(e.Args))
	for i, a := range e.Args {
		res.Args[i] = Convert(a, f)
	}
	return res
}

// Negate multiplies e by -1. There is no first-class subtraction or unary
// minus node: every site that would produce "minus e" goes through here so
// the representation stays uniform. Integer literals negate in place;
// products gain a trailing -1 factor.
func Negate[ID comparable](e *Expr[ID]) *Expr[ID] {
	switch e.Kind {
	case IntKind:
		return &Expr[ID]{Kind: IntKind, Int: new(big.Int).Neg(e.Int)}
	case ProductKind:
		args := make([]*Expr[ID], 0, len(e.Args)+1)
		args = append(args, e.Args...)
		args = append(args, FromInt[ID](-1))
		return Product(args...)
	default:
		return Product(e, FromInt[ID](-1))
	}
}
