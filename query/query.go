// Package query selects truth table rows with boolean predicates.
//
// Predicates are expr-lang expressions (github.com/expr-lang/expr).  In a
// predicate each variable is a bool named by its letter, step k is the
// bool sk, result is the value of the whole formula and row is the row
// index.  The function ones() returns the number of true variables in the
// row.
//
//	A && !result
//	s2 == s3 || ones() > 1
package query

import (
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/truthtable/debug"
	"github.com/signadot/truthtable/table"
)

const (
	resultName = "result"
	rowName    = "row"
)

// StepName returns the name of step id in predicates.
func StepName(id int) string {
	return "s" + strconv.Itoa(id)
}

// Query is a compiled predicate over the rows of one table.
type Query struct {
	src    string
	prg    *vm.Program
	tab    *table.Table
	result table.Header
	cur    int
}

// Compile compiles src against tab.  result, when not zero, is bound to
// the name result.
func Compile(src string, tab *table.Table, result table.Header) (*Query, error) {
	q := &Query{src: src, tab: tab, result: result}
	prg, err := expr.Compile(src, q.exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	q.prg = prg
	return q, nil
}

func (q *Query) exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(q.env(0)),
		expr.AsBool(),
		expr.Function("ones", func(params ...any) (any, error) {
			n := 0
			for _, v := range q.tab.Variables() {
				c, err := q.tab.Column(table.Var(v))
				if err != nil {
					return nil, err
				}
				if c.Bit(q.cur) {
					n++
				}
			}
			return n, nil
		},
			new(func() int)),
	}
}

func (q *Query) env(row int) map[string]any {
	vals := q.tab.Row(row)
	env := make(map[string]any, len(vals)+2)
	for h, v := range vals {
		name := h.Name()
		if h.IsStep() {
			name = StepName(h.StepID())
		}
		env[name] = v
	}
	if v, ok := vals[q.result]; ok {
		env[resultName] = v
	}
	env[rowName] = row
	return env
}

// Match evaluates the predicate on row i.
func (q *Query) Match(i int) (bool, error) {
	q.cur = i
	res, err := expr.Run(q.prg, q.env(i))
	if err != nil {
		return false, fmt.Errorf("error evaluating %q on row %d: %w", q.src, i, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%q gave %T, not bool", q.src, res)
	}
	if debug.Query() {
		debug.Logf("row %d %q -> %v\n", i, q.src, b)
	}
	return b, nil
}

// Select returns the indices of the rows matching the predicate.
func (q *Query) Select() ([]int, error) {
	res := []int{}
	for i := 0; i < q.tab.NumRows(); i++ {
		ok, err := q.Match(i)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, i)
		}
	}
	return res, nil
}
