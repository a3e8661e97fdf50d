package main

import (
	"fmt"
	"strconv"

	"github.com/derivelab/derive/eval"
	"github.com/derivelab/derive/namespace"
	"github.com/derivelab/derive/parse"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 4 {
		return fmt.Errorf("%w: eval takes a formula, a variable, and sample bounds", cli.ErrUsage)
	}
	min, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("%w: bad minimum %q", cli.ErrUsage, args[2])
	}
	max, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("%w: bad maximum %q", cli.ErrUsage, args[3])
	}
	e, err := parse.Parse([]byte(args[0]))
	if err != nil {
		return err
	}
	ns := namespace.New()
	ie := ns.Intern(e).Reduce()
	xs := eval.Linspace(min, max, cfg.Samples)
	ys, err := eval.Evaluate(ie, ns.ID(args[1]), xs)
	if err != nil {
		return err
	}
	for i := range xs {
		fmt.Fprintf(cc.Out, "%g\t%g\n", xs[i], ys[i])
	}
	return nil
}
