package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "sexpedit").
		WithSynopsis("sexpedit [opts] command [opts]").
		WithDescription("sexpedit is a structural editor for lisp source text.").
		WithOpts(opts...).
		WithSubs(
			FmtCommand(cfg),
			ViewCommand(cfg),
			CheckCommand(cfg),
			BalanceCommand(cfg),
			ApplyCommand(cfg),
			SelCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg, Pos: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] [-oneline] [-pos off] [files]").
		WithDescription("reformat lisp source using the dialect's layout table").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("parse and reprint lisp source, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-q] [files]").
		WithDescription("report unmatched delimiters with line and column").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func BalanceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BalanceConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Balance, "balance").
		WithAliases("b").
		WithSynopsis("balance [files]").
		WithDescription("add the minimal delimiters that make the input well formed").
		WithRun(func(cc *cli.Context, args []string) error {
			return balance(cfg, cc, args)
		})
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg, Count: 1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a").
		WithSynopsis("apply [opts] <op> [file]").
		WithDescription(applyUsage).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

func SelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Sel, "sel").
		WithAliases("s").
		WithSynopsis("sel [-all] <predicate> [files]").
		WithDescription(selUsage).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sel(cfg, cc, args)
		})
}
