package table

import (
	"fmt"

	"github.com/signadot/truthtable/token"
)

// MaxVariables bounds the variables of a table, which has 2^n rows for n
// variables.
const MaxVariables = 24

// Table is the assignment table of a formula.  Columns are only ever
// appended.
type Table struct {
	headers []Header
	cols    []Column
	index   map[Header]int
	nVars   int
	rows    int
}

// Variables returns the variable letters of formula in lexicographic
// order, ignoring negation keywords.
func Variables(formula string) []string {
	return token.Variables([]byte(formula))
}

// Enumerate builds the initial table over vars: one column per variable,
// 2^len(vars) rows, with row i holding the big endian bits of i, the most
// significant bit in the column of vars[0].
func Enumerate(vars []string) (*Table, error) {
	if len(vars) == 0 {
		return nil, &NoVariablesError{}
	}
	n := len(vars)
	if n > MaxVariables {
		return nil, fmt.Errorf("%w: %d variables, limit %d", ErrTooManyVariables, n, MaxVariables)
	}
	rows := 1 << n
	cells := make([][]byte, n)
	for j := range cells {
		cells[j] = make([]byte, rows)
	}
	for i := 0; i < rows; i++ {
		bits := RenderBits(uint64(i), n)
		for j := 0; j < len(bits); j++ {
			cells[j][i] = bits[j]
		}
	}
	t := &Table{
		index: make(map[Header]int, n),
		rows:  rows,
	}
	for j, v := range vars {
		if err := t.add(Var(v), Column(cells[j])); err != nil {
			return nil, err
		}
	}
	t.nVars = n
	return t, nil
}

// Add appends column c under header h.  h must not be present already and
// c must have one cell per row.
func (t *Table) Add(h Header, c Column) error {
	return t.add(h, c)
}

func (t *Table) add(h Header, c Column) error {
	if _, ok := t.index[h]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateHeader, h)
	}
	if c.Len() != t.rows {
		return fmt.Errorf("%w: %s has %d cells, want %d", ErrColumnLength, h, c.Len(), t.rows)
	}
	t.index[h] = len(t.cols)
	t.headers = append(t.headers, h)
	t.cols = append(t.cols, c)
	return nil
}

// Column returns the column of h.
func (t *Table) Column(h Header) (Column, error) {
	i, ok := t.index[h]
	if !ok {
		return "", &UnknownHeaderError{Token: h.String()}
	}
	return t.cols[i], nil
}

// Has reports whether h is a header of t.
func (t *Table) Has(h Header) bool {
	_, ok := t.index[h]
	return ok
}

// Headers returns the variable headers in extraction order followed by
// the step headers in creation order.
func (t *Table) Headers() []Header {
	return append([]Header(nil), t.headers...)
}

// Variables returns the variable names of t.
func (t *Table) Variables() []string {
	res := make([]string, t.nVars)
	for i := range res {
		res[i] = t.headers[i].Name()
	}
	return res
}

// NumRows returns 2^N for N variables.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the number of variable and step columns.
func (t *Table) NumCols() int { return len(t.cols) }

// NumSteps returns the number of derived columns.
func (t *Table) NumSteps() int { return len(t.cols) - t.nVars }

// Rows returns the table as a rows by columns grid of 0/1 values, columns
// in header order.
func (t *Table) Rows() [][]int {
	res := make([][]int, t.rows)
	for i := range res {
		row := make([]int, len(t.cols))
		for j, c := range t.cols {
			if c.Bit(i) {
				row[j] = 1
			}
		}
		res[i] = row
	}
	return res
}

// Row returns the values of row i keyed by header.
func (t *Table) Row(i int) map[Header]bool {
	res := make(map[Header]bool, len(t.cols))
	for j, c := range t.cols {
		res[t.headers[j]] = c.Bit(i)
	}
	return res
}

// Map returns the table as a mapping from header to column values.  Step
// headers report IsStep and key as integers via Header.Key.
func (t *Table) Map() map[Header][]int {
	res := make(map[Header][]int, len(t.cols))
	for i, h := range t.headers {
		res[h] = t.cols[i].Ints()
	}
	return res
}

// Entry is one column of an ordered export.
type Entry struct {
	Header Header
	Values []int
}

// Entries returns the columns of t in header order.
func (t *Table) Entries() []Entry {
	res := make([]Entry, len(t.cols))
	for i, h := range t.headers {
		res[i] = Entry{Header: h, Values: t.cols[i].Ints()}
	}
	return res
}
