// Package compare compares the truth tables of two formulas.
//
// Two formulas are equivalent when they have the same variables and their
// result columns agree on every row.  Besides the verdict, a [Report]
// carries a line diff of the two table dumps and a JSON merge patch
// (RFC 7386) taking the column export of the first table to that of the
// second.
package compare

import (
	"encoding/json"
	"slices"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/truthtable"
)

type Report struct {
	SameVariables bool
	Equivalent    bool

	// Differing are the rows where the results differ, when the variables
	// are the same.
	Differing []int

	// Diff is a line diff of the two dumps, lines prefixed by "-", "+" or
	// " ".
	Diff string

	// Patch is a JSON merge patch from the columns of the first result to
	// those of the second.
	Patch []byte
}

// Compare compares from to to.
func Compare(from, to *truthtable.Result) (*Report, error) {
	rep := &Report{
		SameVariables: slices.Equal(from.Variables(), to.Variables()),
	}
	if rep.SameVariables {
		a, b := from.Value(), to.Value()
		rep.Differing = []int{}
		for i := 0; i < a.Len(); i++ {
			if a.Bit(i) != b.Bit(i) {
				rep.Differing = append(rep.Differing, i)
			}
		}
		rep.Equivalent = len(rep.Differing) == 0
	}
	rep.Diff = Lines(from.String(), to.String())
	patch, err := MergePatch(from, to)
	if err != nil {
		return nil, err
	}
	rep.Patch = patch
	return rep, nil
}

// Lines returns a line diff of a and b.
func Lines(a, b string) string {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	var out strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				out.WriteByte('\n')
			}
		}
	}
	return out.String()
}

// MergePatch returns the JSON merge patch from the column export of from
// to that of to.  Columns are keyed by header text.
func MergePatch(from, to *truthtable.Result) ([]byte, error) {
	a, err := columnsJSON(from)
	if err != nil {
		return nil, err
	}
	b, err := columnsJSON(to)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}

func columnsJSON(r *truthtable.Result) ([]byte, error) {
	m := map[string][]int{}
	for _, ent := range r.Entries() {
		m[ent.Header.String()] = ent.Values
	}
	return json.Marshal(m)
}
