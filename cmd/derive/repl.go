package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/derivelab/derive/encode"
	"github.com/derivelab/derive/namespace"
	"github.com/derivelab/derive/parse"

	"github.com/scott-cotton/cli"
)

func repl(cfg *ReplConfig, cc *cli.Context, args []string) error {
	if cfg.Repl != nil {
		var err error
		args, err = cfg.Repl.Parse(cc, args)
		if err != nil {
			return err
		}
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: repl takes no arguments", cli.ErrUsage)
	}
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(cc.Out, "differentiate expression: ")
		if !in.Scan() {
			return in.Err()
		}
		src := in.Text()
		fmt.Fprint(cc.Out, "with respect to variable: ")
		if !in.Scan() {
			return in.Err()
		}
		varName := strings.TrimSpace(in.Text())

		e, err := parse.Parse([]byte(src))
		if err != nil {
			fmt.Fprintf(cc.Out, "\nInvalid expression\n\n")
			continue
		}
		ns := namespace.New()
		ie := ns.Intern(e)
		d := ie.Derivative(ns.ID(varName)).Simplify()

		opts := cfg.encOpts(cc.Out)
		parsed, err := ns.Resolve(ie.Reduce())
		if err != nil {
			return err
		}
		derived, err := ns.Resolve(d)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "\nParsed: %s\n", encode.MustString(parsed, opts...))
		fmt.Fprintf(cc.Out, "\nDifferentiated: %s\n\n", encode.MustString(derived, opts...))
	}
}
