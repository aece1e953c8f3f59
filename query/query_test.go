package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/truthtable/reduce"
)

func engine(t *testing.T, formula string) *reduce.Engine {
	t.Helper()
	e, err := reduce.New(formula)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestSelect(t *testing.T) {
	e := engine(t, `A->B\/C`)
	cases := map[string][]int{
		`result`:            {0, 1, 2, 3, 5, 6, 7},
		`!result`:           {4},
		`A && !B`:           {4, 5},
		`s1`:                {1, 2, 3, 5, 6, 7},
		`s1 != result`:      {0},
		`ones() == 2`:       {3, 5, 6},
		`row % 2 == 0 && A`: {4, 6},
		`true`:              {0, 1, 2, 3, 4, 5, 6, 7},
	}
	for src, want := range cases {
		q, err := Compile(src, e.Table(), e.Result())
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		got, err := q.Select()
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", src, diff)
		}
	}
}

func TestCompileErr(t *testing.T) {
	e := engine(t, `A/\B`)
	for _, src := range []string{`D`, `A +`, `row`, `s2`} {
		if _, err := Compile(src, e.Table(), e.Result()); err == nil {
			t.Errorf("%q: expected error", src)
		}
	}
}
