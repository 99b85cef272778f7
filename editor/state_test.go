package editor

import (
	"errors"
	"testing"

	"calcpad/expr"
)

func press(t *testing.T, s *State, labels ...string) {
	t.Helper()
	for _, l := range labels {
		if _, ok := s.Press(l); !ok {
			t.Fatalf("Press(%q) not recognized", l)
		}
	}
}

func TestPress_Sequences(t *testing.T) {
	tests := []struct {
		name       string
		labels     []string
		wantExpr   string
		wantResult string
	}{
		{name: "add", labels: []string{"1", "2", "+", "3", "="}, wantExpr: "12+3", wantResult: "15"},
		{name: "operator collapse", labels: []string{"5", "+", "-", "3", "="}, wantExpr: "5-3", wantResult: "2"},
		{name: "toggle strips leading minus", labels: []string{"-", "5", "+/-", "="}, wantExpr: "5", wantResult: "5"},
		{name: "toggle prepends minus", labels: []string{"5", "+/-", "="}, wantExpr: "-5", wantResult: "-5"},
		{name: "toggle on empty", labels: []string{"+/-"}, wantExpr: "", wantResult: ""},
		{name: "display glyphs", labels: []string{"6", "×", "7", "÷", "2", "="}, wantExpr: "6×7÷2", wantResult: "21"},
		{name: "ascii aliases", labels: []string{"6", "*", "4", "/", "8", "="}, wantExpr: "6×4÷8", wantResult: "3"},
		{name: "glyph collapse", labels: []string{"9", "×", "÷", "3", "="}, wantExpr: "9÷3", wantResult: "3"},
		{name: "precedence", labels: []string{"2", "+", "3", "×", "4", "="}, wantExpr: "2+3×4", wantResult: "14"},
		{name: "percent", labels: []string{"5", "0", "%"}, wantExpr: "0.5", wantResult: "0.5"},
		{name: "square", labels: []string{"1", "2", "x²"}, wantExpr: "144", wantResult: "144"},
		{name: "square chains", labels: []string{"3", "x²", "+", "1", "="}, wantExpr: "9+1", wantResult: "10"},
		{name: "percent of expression", labels: []string{"2", "0", "0", "+", "5", "0", "%"}, wantExpr: "2.5", wantResult: "2.5"},
		{name: "clear", labels: []string{"1", "+", "1", "=", "C"}, wantExpr: "", wantResult: ""},
		{name: "backspace", labels: []string{"1", "2", "×", "⌫", "⌫", "="}, wantExpr: "1", wantResult: "1"},
		{name: "decimal", labels: []string{"1", ".", "5", "+", ".", "5", "="}, wantExpr: "1.5+.5", wantResult: "2"},
		{name: "divide by zero", labels: []string{"5", "÷", "0", "="}, wantExpr: "5÷0", wantResult: expr.ErrorText},
		{name: "trailing operator", labels: []string{"5", "+", "="}, wantExpr: "5+", wantResult: expr.ErrorText},
		{name: "empty equals", labels: []string{"="}, wantExpr: "", wantResult: expr.ErrorText},
	}

	for _, tt := range tests {
		var s State
		press(t, &s, tt.labels...)
		if s.Expression != tt.wantExpr || s.Result != tt.wantResult {
			t.Fatalf("%s: state = {%q %q}, want {%q %q}", tt.name, s.Expression, s.Result, tt.wantExpr, tt.wantResult)
		}
	}
}

func TestApply_DecimalGuard(t *testing.T) {
	var s State
	s.Apply(Decimal)
	s.Apply(Decimal)
	if s.Expression != "." {
		t.Fatalf("Expression = %q, want %q", s.Expression, ".")
	}

	s = State{Expression: "3.14"}
	s.Apply(Decimal)
	if s.Expression != "3.14" {
		t.Fatalf("Expression = %q, want %q", s.Expression, "3.14")
	}

	s.Apply(Operator(expr.OpAdd))
	s.Apply(Decimal)
	if s.Expression != "3.14+." {
		t.Fatalf("Expression = %q, want %q", s.Expression, "3.14+.")
	}
}

func TestApply_EarlierRunsAreNotRevalidated(t *testing.T) {
	s := State{Expression: "1.2+3.4.5"}
	s.Apply(Digit('6'))
	if s.Expression != "1.2+3.4.56" {
		t.Fatalf("Expression = %q", s.Expression)
	}
	out := s.Apply(Equals)
	if !errors.Is(out.Err, expr.ErrParse) {
		t.Fatalf("Equals err=%v, want parse error", out.Err)
	}
	if s.Result != expr.ErrorText {
		t.Fatalf("Result = %q, want %q", s.Result, expr.ErrorText)
	}
}

func TestApply_PercentAndSquareSwallowFailures(t *testing.T) {
	for _, in := range []Input{Percent, Square} {
		s := State{Expression: "7÷0", Result: "42"}
		out := s.Apply(in)
		if !out.Evaluated || !errors.Is(out.Err, expr.ErrDivisionByZero) {
			t.Fatalf("%v: outcome = %+v, want division by zero", in, out)
		}
		if s.Expression != "7÷0" || s.Result != "42" {
			t.Fatalf("%v: state = {%q %q}, want unchanged", in, s.Expression, s.Result)
		}
	}
}

func TestApply_EqualsLeavesExpression(t *testing.T) {
	s := State{Expression: "2×(3"}
	out := s.Apply(Equals)
	if !errors.Is(out.Err, expr.ErrUnmatchedParen) {
		t.Fatalf("Equals err=%v, want unmatched paren", out.Err)
	}
	if s.Expression != "2×(3" || s.Result != expr.ErrorText {
		t.Fatalf("state = {%q %q}", s.Expression, s.Result)
	}
}

func TestApply_ResultIsReparsable(t *testing.T) {
	s := State{Expression: "1÷3"}
	first := s.Apply(Equals)
	if first.Err != nil {
		t.Fatalf("Equals err=%v", first.Err)
	}
	s = State{Expression: s.Result}
	again := s.Apply(Equals)
	if again.Err != nil || again.Value != first.Value {
		t.Fatalf("re-evaluated %v (%v), want %v", again.Value, again.Err, first.Value)
	}
}

func TestPress_UnknownLabel(t *testing.T) {
	s := State{Expression: "1"}
	if _, ok := s.Press("sin"); ok {
		t.Fatalf("Press(sin) recognized")
	}
	if s.Expression != "1" {
		t.Fatalf("Expression = %q", s.Expression)
	}
}

func TestParse_RoundTripsLabels(t *testing.T) {
	labels := []string{"C", "+/-", "%", "÷", "7", "8", "9", "×", "4", "5", "6", "-", "1", "2", "3", "+", "x²", "0", ".", "=", "⌫"}
	for _, l := range labels {
		in, ok := Parse(l)
		if !ok {
			t.Fatalf("Parse(%q) not recognized", l)
		}
		if got := in.String(); got != l {
			t.Fatalf("Parse(%q).String() = %q", l, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("6×7÷2-1"); got != "6*7/2-1" {
		t.Fatalf("Normalize = %q", got)
	}
}
