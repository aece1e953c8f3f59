package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/truthtable"
	"github.com/signadot/truthtable/encode"
	"github.com/signadot/truthtable/sat"
)

func classify(cfg *ClassifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Classify.Parse(cc, args)
	if err != nil {
		return err
	}
	fms, err := formulas(cc.In, args)
	if err != nil {
		return err
	}
	fmat := cfg.outFormat(encode.Text)
	return cfg.eachResult(cc.Out, fms, func(_ int, res *truthtable.Result) error {
		rep, err := res.Classify()
		if err != nil {
			return err
		}
		if !fmat.IsText() {
			doc := res.Document()
			doc.Report = rep
			return encode.Encode(doc, cc.Out, encode.EncodeFormat(fmat), encode.EncodeSteps(false))
		}
		return writeReport(cc.Out, res.Variables(), rep)
	})
}

func writeReport(w io.Writer, vars []string, rep *sat.Report) error {
	if _, err := fmt.Fprintf(w, "%s\n", rep.Class); err != nil {
		return err
	}
	for _, wit := range []struct {
		name string
		a    map[string]bool
	}{
		{"satisfying", rep.Satisfying},
		{"falsifying", rep.Falsifying},
	} {
		if wit.a == nil {
			continue
		}
		_, err := fmt.Fprintf(w, "%s: %s (row %d)\n", wit.name, assignment(vars, wit.a), sat.Row(vars, wit.a))
		if err != nil {
			return err
		}
	}
	return nil
}

func assignment(vars []string, a map[string]bool) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		b := 0
		if a[v] {
			b = 1
		}
		parts[i] = fmt.Sprintf("%s=%d", v, b)
	}
	return strings.Join(parts, " ")
}
