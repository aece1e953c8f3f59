package table

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnumerate(t *testing.T) {
	for n := 1; n <= 5; n++ {
		vars := make([]string, n)
		for i := range vars {
			vars[i] = string(rune('A' + i))
		}
		tab, err := Enumerate(vars)
		if err != nil {
			t.Fatal(err)
		}
		if tab.NumRows() != 1<<n {
			t.Errorf("n=%d: got %d rows", n, tab.NumRows())
		}
		if tab.NumCols() != n || tab.NumSteps() != 0 {
			t.Errorf("n=%d: got %d cols %d steps", n, tab.NumCols(), tab.NumSteps())
		}
		for i, row := range tab.Rows() {
			v := 0
			for _, b := range row {
				v = v<<1 | b
			}
			if v != i {
				t.Errorf("n=%d: row %d encodes %d", n, i, v)
			}
		}
	}
}

func TestEnumerateTwo(t *testing.T) {
	tab, err := Enumerate([]string{"A", "B"})
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if diff := cmp.Diff(want, tab.Rows()); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}
}

func TestEnumerateNoVariables(t *testing.T) {
	_, err := Enumerate(nil)
	if !errors.Is(err, ErrNoVariables) {
		t.Fatalf("got %v", err)
	}
	var nvErr *NoVariablesError
	if !errors.As(err, &nvErr) {
		t.Fatalf("got %T", err)
	}
}

func TestEnumerateTooMany(t *testing.T) {
	vars := make([]string, 0, 52)
	for c := 'A'; c <= 'Z'; c++ {
		vars = append(vars, string(c), string(c+'a'-'A'))
	}
	for _, n := range []int{MaxVariables + 1, len(vars)} {
		if _, err := Enumerate(vars[:n]); !errors.Is(err, ErrTooManyVariables) {
			t.Errorf("%d variables: got %v", n, err)
		}
	}
}

func TestRenderBits(t *testing.T) {
	cases := []struct {
		v     uint64
		width int
		want  string
	}{
		{0, 3, "000"},
		{5, 3, "101"},
		{1, 4, "0001"},
		{6, 3, "110"},
		// longer than width: low order bits dropped
		{13, 2, "11"},
		{4, 1, "1"},
	}
	for _, c := range cases {
		if got := RenderBits(c.v, c.width); got != c.want {
			t.Errorf("RenderBits(%d, %d) = %q want %q", c.v, c.width, got, c.want)
		}
	}
}

func TestAddImmutable(t *testing.T) {
	tab, err := Enumerate([]string{"A"})
	if err != nil {
		t.Fatal(err)
	}
	if err := tab.Add(Step(1), "10"); err != nil {
		t.Fatal(err)
	}
	if err := tab.Add(Step(1), "01"); !errors.Is(err, ErrDuplicateHeader) {
		t.Errorf("got %v", err)
	}
	if err := tab.Add(Var("A"), "01"); !errors.Is(err, ErrDuplicateHeader) {
		t.Errorf("got %v", err)
	}
	if err := tab.Add(Step(2), "011"); !errors.Is(err, ErrColumnLength) {
		t.Errorf("got %v", err)
	}
	c, err := tab.Column(Step(1))
	if err != nil {
		t.Fatal(err)
	}
	if c != "10" {
		t.Errorf("got %q", c)
	}
}

func TestColumnUnknown(t *testing.T) {
	tab, _ := Enumerate([]string{"A"})
	_, err := tab.Column(Var("C"))
	var uhErr *UnknownHeaderError
	if !errors.As(err, &uhErr) {
		t.Fatalf("got %v", err)
	}
	if uhErr.Token != "C" {
		t.Errorf("got token %q", uhErr.Token)
	}
	if !errors.Is(err, ErrUnknownHeader) {
		t.Error("expected ErrUnknownHeader")
	}
}

func TestMapIdempotent(t *testing.T) {
	tab, _ := Enumerate([]string{"A", "B"})
	if err := tab.Add(Step(1), "0001"); err != nil {
		t.Fatal(err)
	}
	m1 := tab.Map()
	m1[Var("A")][0] = 7
	m2 := tab.Map()
	m3 := tab.Map()
	if diff := cmp.Diff(m2, m3, cmp.AllowUnexported(Header{})); diff != "" {
		t.Errorf("export changed (-first +second):\n%s", diff)
	}
	if m2[Var("A")][0] != 0 {
		t.Error("export aliases table storage")
	}
	if got := m2[Step(1)]; !cmp.Equal(got, []int{0, 0, 0, 1}) {
		t.Errorf("got %v", got)
	}
	for h := range m2 {
		switch k := h.Key().(type) {
		case int:
			if !h.IsStep() || k != 1 {
				t.Errorf("bad int key %v", k)
			}
		case string:
			if h.IsStep() {
				t.Errorf("bad string key %v", k)
			}
		}
	}
}

func TestParseHeader(t *testing.T) {
	if h := ParseHeader("12"); !h.IsStep() || h.StepID() != 12 {
		t.Errorf("got %v", h)
	}
	if h := ParseHeader("A"); h.IsStep() || h.Name() != "A" {
		t.Errorf("got %v", h)
	}
	if h := ParseHeader("0"); h.IsStep() {
		t.Errorf("0 is not a step id")
	}
}

func TestFprint(t *testing.T) {
	tab, _ := Enumerate([]string{"A", "B"})
	if err := tab.Add(Step(1), "0001"); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"A B 1",
		"0 0 0",
		"0 1 0",
		"1 0 0",
		"1 1 1",
	}, "\n") + "\n"
	if got := tab.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	buf := &strings.Builder{}
	if err := tab.Fprint(buf, WithRows([]int{3}), WithSep("|")); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "A|B|1\n1|1|1\n" {
		t.Errorf("got %q", got)
	}
}

func TestFprintWideHeaders(t *testing.T) {
	tab, _ := Enumerate([]string{"A"})
	for i := 1; i <= 10; i++ {
		c := Column("01")
		if i%2 == 0 {
			c = "10"
		}
		if err := tab.Add(Step(i), c); err != nil {
			t.Fatal(err)
		}
	}
	lines := strings.Split(strings.TrimSpace(tab.String()), "\n")
	for _, ln := range lines[1:] {
		if len(ln) != len(lines[0]) {
			t.Errorf("row %q not aligned with %q", ln, lines[0])
		}
	}
}

func TestRotate(t *testing.T) {
	grid := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	ccw := Rotate(grid)
	if diff := cmp.Diff([][]int{{3, 6}, {2, 5}, {1, 4}}, ccw); diff != "" {
		t.Errorf("Rotate (-want +got):\n%s", diff)
	}
	cw := RotateClockwise(grid)
	if diff := cmp.Diff([][]int{{4, 1}, {5, 2}, {6, 3}}, cw); diff != "" {
		t.Errorf("RotateClockwise (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(grid, Rotate(RotateClockwise(grid))); diff != "" {
		t.Errorf("rotations are not inverse:\n%s", diff)
	}
	if got := Rotate([][]int{}); len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

func TestMap2(t *testing.T) {
	and := func(a, b bool) bool { return a && b }
	c, err := Map2("0011", "0101", and)
	if err != nil {
		t.Fatal(err)
	}
	if c != "0001" {
		t.Errorf("got %q", c)
	}
	if _, err := Map2("01", "011", and); !errors.Is(err, ErrColumnLength) {
		t.Errorf("got %v", err)
	}
	if got := Map1("01", func(v bool) bool { return !v }); got != "10" {
		t.Errorf("got %q", got)
	}
}

func ExampleEnumerate() {
	tab, err := Enumerate(Variables("B -> A"))
	if err != nil {
		panic(err)
	}
	fmt.Print(tab)
	// Output:
	// A B
	// 0 0
	// 0 1
	// 1 0
	// 1 1
}
