// Package derive ties the formula pipeline together for callers that want
// one call instead of wiring parse, namespace, expr, and encode themselves.
package derive

import (
	"github.com/derivelab/derive/debug"
	"github.com/derivelab/derive/encode"
	"github.com/derivelab/derive/namespace"
	"github.com/derivelab/derive/parse"
)

// Derivative parses src, differentiates it with respect to variable, and
// renders the simplified result.
func Derivative(src []byte, variable string, opts ...encode.EncodeOption) (string, error) {
	e, err := parse.Parse(src)
	if err != nil {
		return "", err
	}
	ns := namespace.New()
	d := ns.Intern(e).Derivative(ns.ID(variable)).Simplify()
	if debug.Diff() {
		debug.Logf("derivative of %q by %q has %d variables\n",
			src, variable, ns.Len())
	}
	res, err := ns.Resolve(d)
	if err != nil {
		return "", err
	}
	return encode.MustString(res, opts...), nil
}

// Canonical parses src and renders its reduced form.
func Canonical(src []byte, opts ...encode.EncodeOption) (string, error) {
	e, err := parse.Parse(src)
	if err != nil {
		return "", err
	}
	r := e.Reduce()
	if debug.Reduce() {
		debug.Logf("reduced %q to %s\n", src, encode.MustString(r))
	}
	return encode.MustString(r, opts...), nil
}
