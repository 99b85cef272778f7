// Package editor turns calculator button presses into edits of an expression buffer.
package editor

import (
	"strings"
	"unicode/utf8"

	"calcpad/expr"
)

// State is the calculator display: the expression being composed and the last result.
type State struct {
	Expression string
	Result     string
}

// Outcome describes what an Apply call did beyond editing the buffer.
type Outcome struct {
	// Evaluated is set when the input ran the evaluator (Equals, Percent, Square).
	Evaluated bool
	Value     float64
	Err       error
}

var normalizer = strings.NewReplacer(LabelMul, "*", LabelDiv, "/")

// Normalize rewrites the display glyphs × and ÷ to the ASCII operators the evaluator reads.
func Normalize(s string) string { return normalizer.Replace(s) }

// Press decodes label and applies it. It reports false for an unknown label.
func (s *State) Press(label string) (Outcome, bool) {
	in, ok := Parse(label)
	if !ok {
		return Outcome{}, false
	}
	return s.Apply(in), true
}

// Apply performs the transition for in.
func (s *State) Apply(in Input) Outcome {
	switch in.Key {
	case KeyClear:
		s.Expression = ""
		s.Result = ""

	case KeyDigit:
		if in.Digit >= '0' && in.Digit <= '9' {
			s.Expression += string(rune(in.Digit))
		}

	case KeyDecimal:
		if !strings.Contains(trailingNumber(s.Expression), ".") {
			s.Expression += "."
		}

	case KeyOperator:
		g := Glyph(in.Op)
		if g == "" {
			return Outcome{}
		}
		if r, size := utf8.DecodeLastRuneInString(s.Expression); size > 0 && isOperator(r) {
			s.Expression = s.Expression[:len(s.Expression)-size]
		}
		s.Expression += g

	case KeyToggleSign:
		if strings.HasPrefix(s.Expression, "-") {
			s.Expression = s.Expression[1:]
		} else if s.Expression != "" {
			s.Expression = "-" + s.Expression
		}

	case KeyBackspace:
		if _, size := utf8.DecodeLastRuneInString(s.Expression); size > 0 {
			s.Expression = s.Expression[:len(s.Expression)-size]
		}

	case KeyEquals:
		v, err := s.evaluate()
		if err != nil {
			s.Result = expr.Describe(err)
		} else {
			s.Result = expr.Format(v)
		}
		return Outcome{Evaluated: true, Value: v, Err: err}

	case KeyPercent:
		return s.feedBack(func(v float64) float64 { return v / 100 })

	case KeySquare:
		return s.feedBack(func(v float64) float64 { return v * v })
	}
	return Outcome{}
}

func (s *State) evaluate() (float64, error) {
	return expr.Evaluate(Normalize(s.Expression))
}

// feedBack evaluates the buffer and replaces both buffer and result with fn of the value.
// A failed evaluation leaves the state untouched.
func (s *State) feedBack(fn func(float64) float64) Outcome {
	v, err := s.evaluate()
	if err != nil {
		return Outcome{Evaluated: true, Err: err}
	}
	v = fn(v)
	s.Result = expr.Format(v)
	s.Expression = s.Result
	return Outcome{Evaluated: true, Value: v}
}

// trailingNumber returns the run of digits and '.' at the end of s.
func trailingNumber(s string) string {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if c != '.' && (c < '0' || c > '9') {
			break
		}
		i--
	}
	return s[i:]
}

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '×', '÷':
		return true
	}
	return false
}
