package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{MaxVars: 16}
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
			Description: "output format: text/t, yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tt").
		WithSynopsis("tt [opts] command [opts]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ttMain(cfg, cc, args)
		}).
		WithSubs(
			SolveCommand(cfg),
			StepsCommand(cfg),
			ExportCommand(cfg),
			WhereCommand(cfg),
			ClassifyCommand(cfg),
			DiffCommand(cfg))
}

const mainDescription = `tt builds truth tables of boolean formulas.

Formulas are given as arguments, or one per line on standard input when no
argument is given.  Blank lines and lines starting with '#' are skipped.

Variables are single upper case letters.  Operators, from the first reduced
to the last:

  INV(X) or NOT(X)   negation
  /\                 and
  \/                 or
  ->                 implication
  =                  equivalence

Each operator application becomes a numbered step with its own column.`

func SolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SolveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Solve, "solve").
		WithAliases("s").
		WithSynopsis("solve [opts] [formulas]").
		WithDescription("print the truth table of formulas").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return solve(cfg, cc, args)
		})
}

func StepsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StepsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Steps, "steps").
		WithAliases("st").
		WithSynopsis("steps [-raw] [formulas]").
		WithDescription("print the reduction steps of formulas").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return steps(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("x").
		WithSynopsis("export [-classify] [formulas]").
		WithDescription("export the table and steps of formulas, yaml by default").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
}

func WhereCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WhereConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Where, "where").
		WithAliases("w").
		WithSynopsis("where [-n] <predicate> [formulas]").
		WithDescription(whereDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return where(cfg, cc, args)
		})
}

const whereDescription = `where prints the rows of the table satisfying a predicate.

The predicate is an expr expression over the variables, the steps s1, s2, ...,
the formula value 'result' and the row index 'row'.  Cells are booleans.

  tt where 'result && !A' 'A->B'
  tt where 'ones() == 2' 'A/\B\/C'`

func ClassifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ClassifyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Classify, "classify").
		WithAliases("c").
		WithSynopsis("classify [formulas]").
		WithDescription("classify formulas as tautology, contradiction or contingent").
		WithRun(func(cc *cli.Context, args []string) error {
			return classify(cfg, cc, args)
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
		WithSynopsis("diff [-patch] a b").
		WithDescription("compare the truth tables of two formulas").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
