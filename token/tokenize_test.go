package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokTest struct {
	in    string
	types []TokenType
	text  string
}

func TestTokenize(t *testing.T) {
	tts := []tokTest{
		{in: `A`, types: []TokenType{TVar}, text: "A"},
		{in: `A/\B`, types: []TokenType{TVar, TAnd, TVar}, text: `A/\B`},
		{in: ` A \/ b `, types: []TokenType{TVar, TOr, TVar}, text: `A\/b`},
		{in: "A\t->\nB", types: []TokenType{TVar, TImpl, TVar}, text: `A->B`},
		{in: `A=B`, types: []TokenType{TVar, TEquiv, TVar}, text: `A=B`},
		{in: `INV(A)`, types: []TokenType{TNeg, TLParen, TVar, TRParen}, text: `INV(A)`},
		{in: `NOT(A)`, types: []TokenType{TNeg, TLParen, TVar, TRParen}, text: `NOT(A)`},
		{in: `A->INV(B)`, types: []TokenType{TVar, TImpl, TNeg, TLParen, TVar, TRParen}, text: `A->INV(B)`},
		{in: `NINV(A)`, types: []TokenType{TVar, TNeg, TLParen, TVar, TRParen}, text: `NINV(A)`},
		{in: "A =B", types: []TokenType{TVar, TEquiv, TVar}, text: `A=B`},
	}
	for _, tt := range tts {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		types := make([]TokenType, len(toks))
		for i := range toks {
			types[i] = toks[i].Type
		}
		if diff := cmp.Diff(tt.types, types); diff != "" {
			t.Errorf("%q: types (-want +got):\n%s", tt.in, diff)
		}
		if got := Join(toks); got != tt.text {
			t.Errorf("%q: got text %q want %q", tt.in, got, tt.text)
		}
	}
}

func TestTokenizeErr(t *testing.T) {
	for _, in := range []string{`A&B`, `A/B`, `A-B`, `A\B`, `1/\A`, `A/\é`, "A\xff"} {
		_, err := Tokenize(nil, []byte(in))
		if err == nil {
			t.Errorf("%q: expected error", in)
			continue
		}
		var tkErr *TokenizeErr
		if !errors.As(err, &tkErr) {
			t.Errorf("%q: expected *TokenizeErr, got %T", in, err)
		}
	}
}

func TestTokenizePos(t *testing.T) {
	toks, err := Tokenize(nil, []byte(`A /\ B`))
	if err != nil {
		t.Fatal(err)
	}
	offs := []int{0, 2, 5}
	for i := range toks {
		if toks[i].Pos.I != offs[i] {
			t.Errorf("token %d at %d, want %d", i, toks[i].Pos.I, offs[i])
		}
	}
}

func TestVariables(t *testing.T) {
	cases := map[string][]string{
		``:             {},
		`/\->`:         {},
		`INV()`:        {},
		`A/\B`:         {"A", "B"},
		`B/\A\/B`:      {"A", "B"},
		`INV(x)->a=X`:  {"X", "a", "x"},
		`NOT(A)`:       {"A"},
		`A & B`:        {"A", "B"},
		`NINV(A)/\VNO`: {"A", "N", "O", "V"},
		`I NV(A)`:      {"A"},
		"N\tO T(B)":    {"B"},
	}
	for in, want := range cases {
		got := Variables([]byte(in))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", in, diff)
		}
	}
}

func TestStepRef(t *testing.T) {
	tok := StepRef(12, NewPosDoc([]byte("A/\\B")).Pos(0))
	if !tok.IsOperand() {
		t.Error("step reference should be an operand")
	}
	if tok.String() != "12" || tok.Step != 12 {
		t.Errorf("got %q/%d", tok.String(), tok.Step)
	}
}

func TestStripSpace(t *testing.T) {
	got, offs := StripSpace([]byte("A - >\u00a0B"))
	if string(got) != "A->B" {
		t.Errorf("got %q", got)
	}
	if diff := cmp.Diff([]int{0, 2, 4, 7}, offs); diff != "" {
		t.Errorf("offsets (-want +got):\n%s", diff)
	}
}
