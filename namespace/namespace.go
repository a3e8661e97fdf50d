// Package namespace associates variable names with numeric identifiers.
//
// A Table is the boundary between name-keyed trees at the text surface and
// the integer-keyed trees the rest of the pipeline works on. One Table per
// session; it is not safe for concurrent use.
package namespace

import (
	"errors"
	"fmt"

	"github.com/derivelab/derive/expr"
)

var ErrUnknownID = errors.New("unknown identifier")

type Table struct {
	names []string
	ids   map[string]int
}

func New() *Table {
	return &Table{
		ids: map[string]int{},
	}
}

// Intern converts a name-keyed tree into an index-keyed tree, storing each
// new name as it appears.
func (t *Table) Intern(e *expr.Expr[string]) *expr.Expr[int] {
	return expr.Convert(e, t.ID)
}

// ID returns the identifier for name, assigning the next free one on first
// use.
func (t *Table) ID(name string) int {
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := len(t.names)
	t.ids[name] = id
	t.names = append(t.names, name)
	return id
}

// Name returns the name stored for id.
func (t *Table) Name(id int) (string, bool) {
	if id < 0 || id >= len(t.names) {
		return "", false
	}
	return t.names[id], true
}

// Resolve converts an index-keyed tree back to names for display. It fails
// when the tree references an identifier the table never produced.
func (t *Table) Resolve(e *expr.Expr[int]) (*expr.Expr[string], error) {
	var resolveErr error
	res := expr.Convert(e, func(id int) string {
		name, ok := t.Name(id)
		if !ok && resolveErr == nil {
			resolveErr = fmt.Errorf("%w: %d", ErrUnknownID, id)
		}
		return name
	})
	if resolveErr != nil {
		return nil, resolveErr
	}
	return res, nil
}

// Len returns the number of interned names.
func (t *Table) Len() int {
	return len(t.names)
}
