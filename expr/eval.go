// Package expr evaluates pocket-calculator arithmetic: + - * / over float64 with parentheses and
// unary minus.
package expr

import (
	"math"
	"strconv"
)

// EvalNode computes the value of an expression tree.
func EvalNode(n Node) (float64, error) {
	if n == nil {
		return 0, &ParseError{Kind: ParseEmpty}
	}
	return n.Eval()
}

// Evaluate tokenizes, parses and evaluates text, stopping at the first failure.
// Display glyphs such as '×' must already be normalized to ASCII.
func Evaluate(text string) (float64, error) {
	toks, err := Tokenize(text)
	if err != nil {
		return 0, err
	}
	n, err := Parse(toks)
	if err != nil {
		return 0, err
	}
	return EvalNode(n)
}

// Format renders v the way results are displayed: the shortest decimal that reads back as v, never
// in exponent form.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
