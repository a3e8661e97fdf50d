package main

import (
	"strconv"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, latex/l",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "derive").
		WithSynopsis("derive [opts] [command [opts]]").
		WithDescription("derive parses algebraic formulas and differentiates them symbolically.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return deriveMain(cfg, cc, args)
		}).
		WithSubs(
			ReplCommand(cfg),
			DiffCommand(cfg),
			EvalCommand(cfg))
}

func ReplCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Repl, "repl").
		WithAliases("r").
		WithSynopsis("repl").
		WithDescription("read formula and variable lines, print the derivative").
		WithRun(func(cc *cli.Context, args []string) error {
			return repl(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [opts] <formula> <variable>").
		WithDescription("differentiate a formula with respect to a variable").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Samples: 11}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e").
		WithOpts(&cli.Opt{
			Name:        "n",
			Description: "number of samples (default 11)",
			Type:        cli.NamedFuncOpt(samplesOpt(cfg), "(count)"),
		}).
		WithSynopsis("eval [-n count] <formula> <variable> <min> <max>").
		WithDescription("evaluate a formula over evenly spaced samples of a variable").
		WithRun(func(cc *cli.Context, args []string) error {
			return evalCmd(cfg, cc, args)
		})
}

func samplesOpt(cfg *EvalConfig) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, cli.ErrUsage
		}
		cfg.Samples = n
		return n, nil
	})
}
