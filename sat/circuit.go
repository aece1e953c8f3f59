package sat

import (
	"fmt"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/signadot/truthtable/debug"
	"github.com/signadot/truthtable/reduce"
	"github.com/signadot/truthtable/table"
)

// Circuit is the circuit of a reduced formula.
type Circuit struct {
	c    *logic.C
	vars []string
	ins  []z.Lit                // input per variable
	lits map[table.Header]z.Lit // literal per header
	root z.Lit
	res  table.Header
}

// Build creates the circuit of the steps in log over vars.  result is the
// header holding the value of the whole formula.
func Build(vars []string, log *reduce.Log, result table.Header) (*Circuit, error) {
	c := &Circuit{
		c:    logic.NewC(),
		vars: vars,
		ins:  make([]z.Lit, len(vars)),
		lits: make(map[table.Header]z.Lit, len(vars)+log.Len()),
		res:  result,
	}
	for i, v := range vars {
		m := c.c.Lit()
		c.ins[i] = m
		c.lits[table.Var(v)] = m
	}
	for _, s := range log.Steps() {
		ms := make([]z.Lit, len(s.Operands))
		for i, h := range s.Operands {
			m, ok := c.lits[h]
			if !ok {
				return nil, &table.UnknownHeaderError{Token: h.String()}
			}
			ms[i] = m
		}
		var g z.Lit
		switch s.Op {
		case reduce.OpNeg:
			g = ms[0].Not()
		case reduce.OpAnd:
			g = c.c.And(ms[0], ms[1])
		case reduce.OpOr:
			g = c.c.Or(ms[0], ms[1])
		case reduce.OpImpl:
			g = c.c.Implies(ms[0], ms[1])
		case reduce.OpEquiv:
			g = c.c.Xor(ms[0], ms[1]).Not()
		default:
			return nil, fmt.Errorf("unsupported operator %s", s.Op)
		}
		if debug.Sat() {
			debug.Logf("gate %d %s %v -> %v\n", s.ID, s.Op, ms, g)
		}
		c.lits[s.Header()] = g
	}
	root, ok := c.lits[result]
	if !ok {
		return nil, &table.UnknownHeaderError{Token: result.String()}
	}
	c.root = root
	return c, nil
}

// Len returns the number of circuit nodes.
func (c *Circuit) Len() int { return c.c.Len() }

// Verify evaluates the circuit on every row of tab and checks the result
// against the column of the formula.
func (c *Circuit) Verify(tab *table.Table) error {
	want, err := tab.Column(c.res)
	if err != nil {
		return err
	}
	ins := make([]table.Column, len(c.vars))
	for i, v := range c.vars {
		if ins[i], err = tab.Column(table.Var(v)); err != nil {
			return err
		}
	}
	n := tab.NumRows()
	vs := make([]uint64, c.c.Len())
	for base := 0; base < n; base += 64 {
		for i := range vs {
			vs[i] = 0
		}
		if c.c.T.IsPos() {
			vs[c.c.T.Var()] = ^uint64(0)
		}
		for i, col := range ins {
			var w uint64
			for b := 0; b < 64 && base+b < n; b++ {
				if col.Bit(base + b) {
					w |= 1 << uint(b)
				}
			}
			vs[c.ins[i].Var()] = w
		}
		c.c.Eval64(vs)
		got := vs[c.root.Var()]
		if !c.root.IsPos() {
			got = ^got
		}
		for b := 0; b < 64 && base+b < n; b++ {
			bit := (got>>uint(b))&1 == 1
			if bit != want.Bit(base+b) {
				return fmt.Errorf("circuit disagrees with table at row %d", base+b)
			}
		}
	}
	return nil
}
