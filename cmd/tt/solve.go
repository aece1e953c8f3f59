package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/truthtable"
	"github.com/signadot/truthtable/encode"
	"github.com/signadot/truthtable/table"
)

func solve(cfg *SolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Solve.Parse(cc, args)
	if err != nil {
		return err
	}
	fms, err := formulas(cc.In, args)
	if err != nil {
		return err
	}
	return cfg.eachResult(cc.Out, fms, func(_ int, res *truthtable.Result) error {
		if cfg.Columns {
			return writeColumns(cc.Out, res, cfg.colors(cc.Out))
		}
		opts := append(cfg.encOpts(cc.Out, encode.Text), encode.EncodeSteps(cfg.Steps))
		return encode.Encode(res.Document(), cc.Out, opts...)
	})
}

// writeColumns writes one line per column, starting with the value of the
// formula and ending with the first variable.
func writeColumns(w io.Writer, res *truthtable.Result, colors *table.Colors) error {
	hdrs := res.Table().Headers()
	width := 0
	for _, h := range hdrs {
		width = max(width, len(h.String()))
	}
	cols := table.Rotate(res.Rows())
	for i, col := range cols {
		h := hdrs[len(hdrs)-1-i]
		attr := table.VarHeaderColor
		if h.IsStep() {
			attr = table.StepHeaderColor
		}
		cells := make([]string, len(col))
		for j, v := range col {
			cellAttr := table.FalseColor
			if v == 1 {
				cellAttr = table.TrueColor
			}
			cells[j] = colors.Color(cellAttr, fmt.Sprint(v))
		}
		pad := strings.Repeat(" ", width-len(h.String()))
		if _, err := fmt.Fprintf(w, "%s%s %s\n", pad, colors.Color(attr, h.String()), strings.Join(cells, "")); err != nil {
			return err
		}
	}
	return nil
}
