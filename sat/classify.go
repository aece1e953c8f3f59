package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/signadot/truthtable/debug"
)

type Class int

const (
	Contingent Class = iota
	Tautology
	Contradiction
)

func (c Class) String() string {
	return map[Class]string{
		Contingent:    "contingent",
		Tautology:     "tautology",
		Contradiction: "contradiction",
	}[c]
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Report is the classification of a formula.  Satisfying and Falsifying
// are witness assignments, nil when none exists.
type Report struct {
	Class      Class
	Satisfying map[string]bool
	Falsifying map[string]bool
}

// Row returns the table row of assignment a over vars.
func Row(vars []string, a map[string]bool) int {
	r := 0
	for _, v := range vars {
		r <<= 1
		if a[v] {
			r |= 1
		}
	}
	return r
}

// Classify decides whether the formula of c is a tautology, a
// contradiction or neither.
func Classify(c *Circuit) *Report {
	rep := &Report{}
	rep.Satisfying = c.solve(c.root)
	rep.Falsifying = c.solve(c.root.Not())
	switch {
	case rep.Falsifying == nil:
		rep.Class = Tautology
	case rep.Satisfying == nil:
		rep.Class = Contradiction
	default:
		rep.Class = Contingent
	}
	if debug.Sat() {
		debug.Logf("classified ")
		debug.LogAny(rep)
		debug.Logf("\n")
	}
	return rep
}

// solve returns an assignment making m true, or nil.
func (c *Circuit) solve(m z.Lit) map[string]bool {
	g := gini.New()
	c.c.ToCnf(g)
	g.Add(c.c.T)
	g.Add(0)
	g.Add(m)
	g.Add(0)
	if g.Solve() != 1 {
		return nil
	}
	res := make(map[string]bool, len(c.vars))
	for i, v := range c.vars {
		in := c.ins[i]
		if in.Var() > g.MaxVar() {
			// unconstrained
			res[v] = false
			continue
		}
		res[v] = g.Value(in)
	}
	return res
}
