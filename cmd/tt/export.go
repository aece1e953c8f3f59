package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/truthtable"
	"github.com/signadot/truthtable/encode"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	fms, err := formulas(cc.In, args)
	if err != nil {
		return err
	}
	return cfg.eachResult(cc.Out, fms, func(_ int, res *truthtable.Result) error {
		doc := res.Document()
		if cfg.Classify {
			rep, err := res.Classify()
			if err != nil {
				return err
			}
			doc.Report = rep
		}
		return encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out, encode.YAML)...)
	})
}
