package main

import (
	"fmt"

	"github.com/derivelab/derive/debug"
	"github.com/derivelab/derive/encode"
	"github.com/derivelab/derive/namespace"
	"github.com/derivelab/derive/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes a formula and a variable", cli.ErrUsage)
	}
	e, err := parse.Parse([]byte(args[0]))
	if err != nil {
		return err
	}
	ns := namespace.New()
	ie := ns.Intern(e)
	if debug.Parse() {
		debug.Logf("parsed %q into %d interned variables\n", args[0], ns.Len())
	}
	opts := cfg.encOpts(cc.Out)
	if cfg.Parsed {
		parsed, err := ns.Resolve(ie.Reduce())
		if err != nil {
			return err
		}
		if debug.Reduce() {
			debug.Logf("reduced %q to %s\n", args[0], encode.MustString(parsed))
		}
		fmt.Fprintf(cc.Out, "%s\n", encode.MustString(parsed, opts...))
	}
	d := ie.Derivative(ns.ID(args[1])).Simplify()
	derived, err := ns.Resolve(d)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s\n", encode.MustString(derived, opts...))
	return nil
}
