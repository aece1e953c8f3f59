package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/truthtable"
	"github.com/signadot/truthtable/compare"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	fms, err := formulas(cc.In, args)
	if err != nil {
		return err
	}
	if len(fms) != 2 {
		return fmt.Errorf("%w: expected 2 formulas, got %d", cli.ErrUsage, len(fms))
	}
	from, err := cfg.solve(fms[0])
	if err != nil {
		return fmt.Errorf("error solving %q: %w", fms[0], err)
	}
	to, err := cfg.solve(fms[1])
	if err != nil {
		return fmt.Errorf("error solving %q: %w", fms[1], err)
	}
	rep, err := compare.Compare(from, to)
	if err != nil {
		return err
	}
	return writeComparison(cc.Out, from, to, rep, cfg.Patch)
}

func writeComparison(w io.Writer, from, to *truthtable.Result, rep *compare.Report, patch bool) error {
	if patch {
		_, err := fmt.Fprintf(w, "%s\n", rep.Patch)
		return err
	}
	var verdict string
	switch {
	case rep.Equivalent:
		verdict = "equivalent"
	case rep.SameVariables:
		verdict = fmt.Sprintf("differ at rows %v", rep.Differing)
	default:
		verdict = fmt.Sprintf("different variables %v %v", from.Variables(), to.Variables())
	}
	if _, err := fmt.Fprintln(w, verdict); err != nil {
		return err
	}
	if rep.Equivalent {
		return nil
	}
	_, err := fmt.Fprint(w, rep.Diff)
	return err
}
