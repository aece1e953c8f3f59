package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/truthtable"
)

const docSep = "\n---\n"

// readFormulas returns one formula per non blank line of r, skipping lines
// starting with '#'.
func readFormulas(r io.Reader) ([]string, error) {
	var res []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res = append(res, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return res, nil
}

// formulas returns args, or the formulas on r when args is empty.
func formulas(r io.Reader, args []string) ([]string, error) {
	if len(args) != 0 {
		return args, nil
	}
	return readFormulas(r)
}

func (cfg *MainConfig) solve(formula string) (*truthtable.Result, error) {
	return truthtable.Solve(formula, cfg.solveOpts()...)
}

// eachResult solves each formula and calls fn on the result, separating
// the outputs on w by "---" lines.
func (cfg *MainConfig) eachResult(w io.Writer, fms []string, fn func(int, *truthtable.Result) error) error {
	n := len(fms)
	for i, fm := range fms {
		res, err := cfg.solve(fm)
		if err != nil {
			return fmt.Errorf("error solving formula %d %q: %w", i, fm, err)
		}
		theLog.Debug("solved", "formula", fm, "steps", len(res.Steps()))
		if err := fn(i, res); err != nil {
			return fmt.Errorf("error writing formula %d %q: %w", i, fm, err)
		}
		if i < n-1 {
			if _, err := io.WriteString(w, docSep); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}
