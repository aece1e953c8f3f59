package table

import (
	"bytes"
	"io"
	"strings"
)

type dumpOpts struct {
	colors *Colors
	rows   []int
	sep    string
}

type DumpOption func(*dumpOpts)

// WithColors colors headers and cells with c.
func WithColors(c *Colors) DumpOption {
	return func(o *dumpOpts) { o.colors = c }
}

// WithRows restricts the dump to the given row indices, in the given
// order.
func WithRows(rows []int) DumpOption {
	return func(o *dumpOpts) {
		o.rows = rows
		if o.rows == nil {
			o.rows = []int{}
		}
	}
}

// WithSep sets the cell separator, a single space by default.
func WithSep(sep string) DumpOption {
	return func(o *dumpOpts) { o.sep = sep }
}

// Fprint writes the headers as a title row followed by one line of bits
// per row.
func (t *Table) Fprint(w io.Writer, opts ...DumpOption) error {
	o := &dumpOpts{sep: " "}
	for _, opt := range opts {
		opt(o)
	}
	rows := o.rows
	if rows == nil {
		rows = make([]int, t.rows)
		for i := range rows {
			rows[i] = i
		}
	}
	widths := make([]int, len(t.headers))
	titles := make([]string, len(t.headers))
	for j, h := range t.headers {
		s := h.String()
		widths[j] = len(s)
		attr := VarHeaderColor
		if h.IsStep() {
			attr = StepHeaderColor
		}
		titles[j] = o.colors.Color(attr, s)
	}
	sep := o.colors.Color(SepColor, o.sep)
	buf := bytes.NewBuffer(nil)
	buf.WriteString(strings.Join(titles, sep))
	buf.WriteByte('\n')
	cells := make([]string, len(t.cols))
	for _, i := range rows {
		for j, c := range t.cols {
			attr := FalseColor
			if c.Bit(i) {
				attr = TrueColor
			}
			cell := c[i : i+1]
			pad := strings.Repeat(" ", widths[j]-1)
			cells[j] = pad + o.colors.Color(attr, string(cell))
		}
		buf.WriteString(strings.Join(cells, sep))
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (t *Table) String() string {
	buf := bytes.NewBuffer(nil)
	t.Fprint(buf)
	return buf.String()
}
