package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/truthtable"
	"github.com/signadot/truthtable/encode"
)

func where(cfg *WhereConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Where.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: expected a predicate", cli.ErrUsage)
	}
	pred := args[0]
	fms, err := formulas(cc.In, args[1:])
	if err != nil {
		return err
	}
	return cfg.eachResult(cc.Out, fms, func(_ int, res *truthtable.Result) error {
		rows, err := res.Where(pred)
		if err != nil {
			return err
		}
		if cfg.Count {
			_, err := fmt.Fprintf(cc.Out, "%d\n", len(rows))
			return err
		}
		opts := append(cfg.encOpts(cc.Out, encode.Text),
			encode.EncodeRows(rows),
			encode.EncodeSteps(false))
		return encode.Encode(res.Document(), cc.Out, opts...)
	})
}
