package truthtable

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/truthtable/encode"
	"github.com/signadot/truthtable/query"
	"github.com/signadot/truthtable/reduce"
	"github.com/signadot/truthtable/sat"
	"github.com/signadot/truthtable/table"
)

// Result is a solved formula.  A Result is read only.
type Result struct {
	formula string
	tab     *table.Table
	log     *reduce.Log
	result  table.Header
}

// Solve builds the truth table of formula.
func Solve(formula string, opts ...reduce.Option) (*Result, error) {
	e, err := reduce.New(formula, opts...)
	if err != nil {
		return nil, err
	}
	if err := e.Run(); err != nil {
		return nil, err
	}
	return &Result{
		formula: formula,
		tab:     e.Table(),
		log:     e.Log(),
		result:  e.Result(),
	}, nil
}

func (r *Result) Formula() string { return r.formula }

// Variables returns the variables in column order.
func (r *Result) Variables() []string { return r.tab.Variables() }

// Table returns the underlying table.
func (r *Result) Table() *table.Table { return r.tab }

// Header returns the header of the column holding the value of the
// formula: the last step, or the variable itself for a formula without
// operators.
func (r *Result) Header() table.Header { return r.result }

// Value returns the column of the whole formula.
func (r *Result) Value() table.Column {
	c, _ := r.tab.Column(r.result)
	return c
}

// Rows returns the table as rows of 0/1 values, variable columns first.
func (r *Result) Rows() [][]int { return r.tab.Rows() }

// Map returns the table as a mapping from header to column.
func (r *Result) Map() map[any][]int {
	res := make(map[any][]int, r.tab.NumCols())
	for h, vs := range r.tab.Map() {
		res[h.Key()] = vs
	}
	return res
}

// MapSlice returns the table as an ordered mapping keyed by variable name
// or step number, suitable for YAML encoding.
func (r *Result) MapSlice() yaml.MapSlice {
	ents := r.tab.Entries()
	res := make(yaml.MapSlice, 0, len(ents))
	for _, ent := range ents {
		res = append(res, yaml.MapItem{Key: ent.Header.Key(), Value: ent.Values})
	}
	return res
}

// Entries returns the columns in order.
func (r *Result) Entries() []table.Entry { return r.tab.Entries() }

// Steps returns the reduction steps in order.
func (r *Result) Steps() []reduce.Step { return r.log.Steps() }

// Texts returns the step texts without back-substitution.
func (r *Result) Texts() []string { return r.log.Texts() }

// Solution returns the back-substituted text of each step.  The last
// entry is the whole formula.
func (r *Result) Solution() []string { return r.log.Solution() }

// Classify decides with a SAT solver whether the formula is a tautology,
// a contradiction or contingent.  The circuit is checked against the table
// before solving.
func (r *Result) Classify() (*sat.Report, error) {
	c, err := sat.Build(r.Variables(), r.log, r.result)
	if err != nil {
		return nil, err
	}
	if err := c.Verify(r.tab); err != nil {
		return nil, err
	}
	return sat.Classify(c), nil
}

// Where returns the indices of the rows satisfying predicate.  See package
// query for the predicate language.
func (r *Result) Where(predicate string) ([]int, error) {
	q, err := query.Compile(predicate, r.tab, r.result)
	if err != nil {
		return nil, err
	}
	return q.Select()
}

// Document returns the encodable form of r.
func (r *Result) Document() *encode.Document {
	return &encode.Document{
		Formula: r.formula,
		Table:   r.tab,
		Log:     r.log,
		Result:  r.result,
	}
}

// Encode writes r to w in format f.
func (r *Result) Encode(w io.Writer, f encode.Format, opts ...encode.EncodeOption) error {
	opts = append([]encode.EncodeOption{encode.EncodeFormat(f)}, opts...)
	return encode.Encode(r.Document(), w, opts...)
}

func (r *Result) String() string {
	return r.tab.String()
}
