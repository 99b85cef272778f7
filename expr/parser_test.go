package expr

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	toks, err := Tokenize("12.5 *(3-.5)/")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	want := []struct {
		kind TokenKind
		num  float64
		pos  int
	}{
		{TokNumber, 12.5, 0},
		{TokStar, 0, 5},
		{TokLParen, 0, 6},
		{TokNumber, 3, 7},
		{TokMinus, 0, 8},
		{TokNumber, 0.5, 9},
		{TokRParen, 0, 11},
		{TokSlash, 0, 12},
		{TokEnd, 0, 13},
	}
	if len(toks) != len(want) {
		t.Fatalf("Tokenize tokens=%d, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Num != w.num || toks[i].Pos != w.pos {
			t.Fatalf("token %d = %+v, want kind=%v num=%v pos=%d", i, toks[i], w.kind, w.num, w.pos)
		}
	}
}

func TestTokenize_SecondDotStartsNewNumber(t *testing.T) {
	toks, err := Tokenize("1.2.3")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if len(toks) != 3 || toks[0].Num != 1.2 || toks[1].Num != 0.3 || toks[1].Pos != 3 {
		t.Fatalf("Tokenize(1.2.3) = %+v", toks)
	}
}

func TestParse_Structure(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "1+2*3", want: "1+2*3"},
		{in: "(1+2)*3", want: "(1+2)*3"},
		{in: "1-(2-3)", want: "1-(2-3)"},
		{in: "(1-2)-3", want: "1-2-3"},
		{in: "8/(4/2)", want: "8/(4/2)"},
		{in: "-(1+2)", want: "-(1+2)"},
		{in: "--4", want: "--4"},
		{in: "2*-3", want: "2*-3"},
		{in: "((7))", want: "7"},
	}

	for _, tt := range tests {
		toks, err := Tokenize(tt.in)
		if err != nil {
			t.Fatalf("Tokenize(%q) error: %v", tt.in, err)
		}
		n, err := Parse(toks)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.in, err)
		}
		if got := n.String(); got != tt.want {
			t.Fatalf("Parse(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse_LeadingMinusIsNegation(t *testing.T) {
	toks, err := Tokenize("-5+3")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	n, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	b, ok := n.(Binary)
	if !ok || b.Op != OpAdd {
		t.Fatalf("root = %#v, want Binary(+)", n)
	}
	if _, ok := b.Left.(Negate); !ok {
		t.Fatalf("left = %#v, want Negate", b.Left)
	}
}

func TestParse_ErrorKinds(t *testing.T) {
	tests := []struct {
		in   string
		kind ParseErrorKind
		pos  int
	}{
		{in: "", kind: ParseEmpty, pos: 0},
		{in: "1-", kind: ParseUnexpectedEnd, pos: 2},
		{in: "(3", kind: ParseUnmatchedParen, pos: 0},
		{in: "4)", kind: ParseUnmatchedParen, pos: 1},
		{in: "4+/2", kind: ParseUnexpectedToken, pos: 2},
	}

	for _, tt := range tests {
		toks, err := Tokenize(tt.in)
		if err != nil {
			t.Fatalf("Tokenize(%q) error: %v", tt.in, err)
		}
		_, err = Parse(toks)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Parse(%q) error=%v, want *ParseError", tt.in, err)
		}
		if pe.Kind != tt.kind || pe.Pos != tt.pos {
			t.Fatalf("Parse(%q) = kind %v pos %d, want kind %v pos %d", tt.in, pe.Kind, pe.Pos, tt.kind, tt.pos)
		}
	}
}

func TestParse_MissingTerminator(t *testing.T) {
	n, err := Parse([]Token{{Kind: TokNumber, Num: 2, Text: "2"}, {Kind: TokPlus, Text: "+", Pos: 1}, {Kind: TokNumber, Num: 5, Text: "5", Pos: 2}})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	v, err := EvalNode(n)
	if err != nil || v != 7 {
		t.Fatalf("EvalNode = %v, %v; want 7", v, err)
	}
}
