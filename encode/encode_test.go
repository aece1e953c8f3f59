package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/truthtable/reduce"
)

func document(t *testing.T, formula string) *Document {
	t.Helper()
	e, err := reduce.New(formula)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	return &Document{
		Formula: formula,
		Table:   e.Table(),
		Log:     e.Log(),
		Result:  e.Result(),
	}
}

func TestEncodeText(t *testing.T) {
	doc := document(t, `INV(A)\/B`)
	var buf bytes.Buffer
	if err := Encode(doc, &buf); err != nil {
		t.Fatal(err)
	}
	want := `A B 1 2
0 0 1 1
0 1 1 1
1 0 0 0
1 1 0 1

1: INV(A)
2: INV(A)\/B
`
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeTextRows(t *testing.T) {
	doc := document(t, `A/\B`)
	var buf bytes.Buffer
	if err := Encode(doc, &buf, EncodeRows([]int{3}), EncodeSteps(false)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "A B 1\n1 1 1\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeYAML(t *testing.T) {
	doc := document(t, `A->B`)
	var buf bytes.Buffer
	if err := Encode(doc, &buf, EncodeFormat(YAML)); err != nil {
		t.Fatal(err)
	}
	var y struct {
		Formula  string        `yaml:"formula"`
		Table    yaml.MapSlice `yaml:"table"`
		Solution []string      `yaml:"solution"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &y); err != nil {
		t.Fatalf("%v\n%s", err, buf.String())
	}
	if y.Formula != `A->B` {
		t.Errorf("got formula %q", y.Formula)
	}
	got := []string{}
	for _, item := range y.Table {
		got = append(got, fmt.Sprintf("%v: %v", item.Key, item.Value))
	}
	want := []string{
		"A: [0 0 1 1]",
		"B: [0 1 0 1]",
		"1: [1 1 0 1]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table (-want +got):\n%s\n%s", diff, buf.String())
	}
	if diff := cmp.Diff([]string{`A->B`}, y.Solution); diff != "" {
		t.Errorf("solution (-want +got):\n%s", diff)
	}
}

func TestEncodeJSON(t *testing.T) {
	doc := document(t, `A=B`)
	var buf bytes.Buffer
	if err := Encode(doc, &buf, EncodeFormat(JSON), EncodeRows([]int{0, 3})); err != nil {
		t.Fatal(err)
	}
	var j jsonDoc
	if err := json.Unmarshal(buf.Bytes(), &j); err != nil {
		t.Fatal(err)
	}
	want := jsonDoc{
		Formula:   `A=B`,
		Variables: []string{"A", "B"},
		Headers:   []string{"A", "B", "1"},
		Rows:      [][]int{{0, 0, 1}, {1, 1, 1}},
		Columns: map[string][]int{
			"A": {0, 1},
			"B": {0, 1},
			"1": {1, 1},
		},
		Solution: []string{`A=B`},
	}
	if diff := cmp.Diff(want, j); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"text": Text,
		"t":    Text,
		"YAML": YAML,
		"y":    YAML,
		"json": JSON,
		"J":    JSON,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	for _, in := range []string{"", "toml", "ya"} {
		if _, err := ParseFormat(in); !errors.Is(err, ErrBadFormat) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestEncodeBadFormat(t *testing.T) {
	doc := document(t, `A`)
	var buf bytes.Buffer
	if err := Encode(doc, &buf, EncodeFormat("xml")); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}
