package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/truthtable"
	"github.com/signadot/truthtable/table"
)

func steps(cfg *StepsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Steps.Parse(cc, args)
	if err != nil {
		return err
	}
	fms, err := formulas(cc.In, args)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	return cfg.eachResult(cc.Out, fms, func(_ int, res *truthtable.Result) error {
		texts := res.Solution()
		if cfg.Raw {
			texts = res.Texts()
		}
		for i, text := range texts {
			h := table.Step(i + 1).String()
			if _, err := fmt.Fprintf(cc.Out, "%s: %s\n", colors.Color(table.StepHeaderColor, h), text); err != nil {
				return err
			}
		}
		return nil
	})
}
