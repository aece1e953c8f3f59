package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/truthtable/reduce"
	"github.com/signadot/truthtable/sat"
	"github.com/signadot/truthtable/table"
)

// Document is what gets encoded for one formula.
type Document struct {
	Formula string
	Table   *table.Table
	Log     *reduce.Log
	Result  table.Header

	// Report is included when set.
	Report *sat.Report
}

func Encode(doc *Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{format: Text, steps: true}
	for _, opt := range opts {
		opt(es)
	}
	enc, err := es.format.encoder()
	if err != nil {
		return err
	}
	return enc(doc, w, es)
}

func encodeText(doc *Document, w io.Writer, es *EncState) error {
	buf := bytes.NewBuffer(nil)
	dOpts := []table.DumpOption{table.WithColors(es.colors)}
	if es.rows != nil {
		dOpts = append(dOpts, table.WithRows(es.rows))
	}
	if err := doc.Table.Fprint(buf, dOpts...); err != nil {
		return err
	}
	if es.steps && doc.Log != nil && doc.Log.Len() != 0 {
		buf.WriteByte('\n')
		for i, s := range doc.Log.Solution() {
			h := table.Step(i + 1).String()
			fmt.Fprintf(buf, "%s: %s\n", es.colors.Color(table.StepHeaderColor, h), s)
		}
	}
	if doc.Report != nil {
		fmt.Fprintf(buf, "\n%s\n", doc.Report.Class)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// flowInts encodes as a YAML flow sequence.
type flowInts []int

func (f flowInts) MarshalYAML() ([]byte, error) {
	parts := make([]string, len(f))
	for i, v := range f {
		parts[i] = strconv.Itoa(v)
	}
	return []byte("[" + strings.Join(parts, ", ") + "]"), nil
}

type yamlDoc struct {
	Formula   string        `yaml:"formula"`
	Variables []string      `yaml:"variables,flow"`
	Rows      []int         `yaml:"rows,omitempty,flow"`
	Table     yaml.MapSlice `yaml:"table"`
	Solution  []string      `yaml:"solution,omitempty"`
	Class     string        `yaml:"class,omitempty"`
}

func encodeYAML(doc *Document, w io.Writer, es *EncState) error {
	y := &yamlDoc{
		Formula:   doc.Formula,
		Variables: doc.Table.Variables(),
		Rows:      es.rows,
	}
	for _, ent := range doc.Table.Entries() {
		y.Table = append(y.Table, yaml.MapItem{
			Key:   ent.Header.Key(),
			Value: flowInts(selectRows(ent.Values, es.rows)),
		})
	}
	if es.steps && doc.Log != nil {
		y.Solution = doc.Log.Solution()
	}
	if doc.Report != nil {
		y.Class = doc.Report.Class.String()
	}
	d, err := yaml.Marshal(y)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

type jsonDoc struct {
	Formula   string           `json:"formula"`
	Variables []string         `json:"variables"`
	Headers   []string         `json:"headers"`
	Rows      [][]int          `json:"rows"`
	Columns   map[string][]int `json:"columns"`
	Solution  []string         `json:"solution,omitempty"`
	Class     string           `json:"class,omitempty"`
}

func encodeJSON(doc *Document, w io.Writer, es *EncState) error {
	j := &jsonDoc{
		Formula:   doc.Formula,
		Variables: doc.Table.Variables(),
		Columns:   map[string][]int{},
	}
	for _, ent := range doc.Table.Entries() {
		j.Headers = append(j.Headers, ent.Header.String())
		j.Columns[ent.Header.String()] = selectRows(ent.Values, es.rows)
	}
	rows := doc.Table.Rows()
	if es.rows == nil {
		j.Rows = rows
	} else {
		j.Rows = make([][]int, 0, len(es.rows))
		for _, i := range es.rows {
			j.Rows = append(j.Rows, rows[i])
		}
	}
	if es.steps && doc.Log != nil {
		j.Solution = doc.Log.Solution()
	}
	if doc.Report != nil {
		j.Class = doc.Report.Class.String()
	}
	d, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func selectRows(vs []int, rows []int) []int {
	if rows == nil {
		return vs
	}
	res := make([]int, len(rows))
	for i, r := range rows {
		res[i] = vs[r]
	}
	return res
}
