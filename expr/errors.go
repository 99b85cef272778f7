package expr

import (
	"errors"
	"fmt"
)

var (
	ErrLex   = errors.New("lex error")
	ErrParse = errors.New("parse error")
	ErrEval  = errors.New("eval error")

	// ErrDivisionByZero is returned when a division's right operand evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")

	ErrEmpty           = errors.New("empty expression")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEnd   = errors.New("unexpected end of input")
	ErrUnmatchedParen  = errors.New("unmatched parenthesis")
)

// ErrorText is the single user-facing rendering of any evaluation failure.
const ErrorText = "Error"

// Describe maps an evaluation failure to the text shown in place of a result.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	return ErrorText
}

// LexError reports a character the tokenizer does not recognize.
type LexError struct {
	Pos  int
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%v: unexpected %q at %d", ErrLex, e.Char, e.Pos)
}

func (e *LexError) Unwrap() error { return ErrLex }

// ParseErrorKind classifies a ParseError.
type ParseErrorKind uint8

const (
	ParseEmpty ParseErrorKind = iota + 1
	ParseUnexpectedToken
	ParseUnexpectedEnd
	ParseUnmatchedParen
)

func (k ParseErrorKind) err() error {
	switch k {
	case ParseEmpty:
		return ErrEmpty
	case ParseUnexpectedEnd:
		return ErrUnexpectedEnd
	case ParseUnmatchedParen:
		return ErrUnmatchedParen
	default:
		return ErrUnexpectedToken
	}
}

// ParseError reports a token sequence that does not match the grammar.
type ParseError struct {
	Kind  ParseErrorKind
	Token Token
	Pos   int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseEmpty, ParseUnexpectedEnd:
		return fmt.Sprintf("%v: %v", ErrParse, e.Kind.err())
	case ParseUnmatchedParen:
		return fmt.Sprintf("%v: %v at %d", ErrParse, e.Kind.err(), e.Pos)
	default:
		what := e.Token.Text
		if what == "" {
			what = e.Token.Kind.String()
		}
		return fmt.Sprintf("%v: %v %q at %d", ErrParse, e.Kind.err(), what, e.Pos)
	}
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Kind.err()} }
