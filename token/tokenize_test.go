package token

import (
	"errors"
	"testing"
)

func tokenTypes(toks []Token) []TokenType {
	tts := make([]TokenType, len(toks))
	for i := range toks {
		tts[i] = toks[i].Type
	}
	return tts
}

func TestTokenizeAssignment(t *testing.T) {
	toks, err := Tokenize([]byte("A = 1\nB = (1.5, \"two\")\nC = 3 <km>"))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{
		TLiteral, TEquals, TInteger,
		TLiteral, TEquals, TLParen, TReal, TComma, TString, TRParen,
		TLiteral, TEquals, TInteger, TUnits,
	}
	got := tokenTypes(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestTokenizeComments(t *testing.T) {
	toks, err := Tokenize([]byte("# leading\nA = 1 /* trailing\nand more */\nB = 2"))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 6 {
		t.Fatalf("got %d tokens want 6: %v", len(toks), tokenTypes(toks))
	}
}

func TestTokenizeStringKeepsNewlines(t *testing.T) {
	toks, err := Tokenize([]byte("A = \"two\nlines\""))
	if err != nil {
		t.Fatal(err)
	}
	if got := toks[2].String(); got != "two\nlines" {
		t.Errorf("got %q", got)
	}
}

func TestTokenizeSignedNumbers(t *testing.T) {
	toks, err := Tokenize([]byte("A = -1 B = +2.5 C = -.5 D = 1e10"))
	if err != nil {
		t.Fatal(err)
	}
	wantVals := map[int]struct {
		tt TokenType
		v  string
	}{
		2:  {TInteger, "-1"},
		5:  {TReal, "+2.5"},
		8:  {TReal, "-.5"},
		11: {TReal, "1e10"},
	}
	for i, w := range wantVals {
		if toks[i].Type != w.tt || string(toks[i].Bytes) != w.v {
			t.Errorf("token %d: got %s %q want %s %q",
				i, toks[i].Type, toks[i].Bytes, w.tt, w.v)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want error
	}{
		{"A = \"open", ErrUnterminated},
		{"A = <km", ErrUnterminated},
		{"A = <km\n>", ErrUnterminated},
		{"A = /* open", ErrUnterminated},
		{"A = \xff\xfe", ErrBadUTF8},
	} {
		_, err := Tokenize([]byte(tc.in))
		if !errors.Is(err, tc.want) {
			t.Errorf("Tokenize(%q): got %v want %v", tc.in, err, tc.want)
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	toks, err := Tokenize([]byte("A = 1\nBB = 2"))
	if err != nil {
		t.Fatal(err)
	}
	// LineCol is zero-based
	line, col := toks[3].Pos.LineCol()
	if line != 1 || col != 0 {
		t.Errorf("BB at line %d col %d, want 1:0", line, col)
	}
}
