package expr

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// TokenKind identifies a lexical token.
type TokenKind uint8

const (
	TokEnd TokenKind = iota
	TokNumber
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokLParen
	TokRParen
)

func (k TokenKind) String() string {
	switch k {
	case TokEnd:
		return "end of input"
	case TokNumber:
		return "number"
	case TokPlus:
		return "+"
	case TokMinus:
		return "-"
	case TokStar:
		return "*"
	case TokSlash:
		return "/"
	case TokLParen:
		return "("
	case TokRParen:
		return ")"
	default:
		return "?"
	}
}

// Token is a single lexical unit. Pos is the byte offset of its first character.
type Token struct {
	Kind TokenKind
	Num  float64
	Text string
	Pos  int
}

type lexer struct {
	s string
	i int
}

// Tokenize splits s into tokens. The result always ends with a TokEnd token.
func Tokenize(s string) ([]Token, error) {
	l := &lexer{s: s}
	var out []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.Kind == TokEnd {
			return out, nil
		}
	}
}

func (l *lexer) next() (Token, error) {
	for l.i < len(l.s) && isSpace(l.s[l.i]) {
		l.i++
	}
	if l.i >= len(l.s) {
		return Token{Kind: TokEnd, Pos: l.i}, nil
	}

	start := l.i
	switch l.s[l.i] {
	case '+':
		l.i++
		return Token{Kind: TokPlus, Text: "+", Pos: start}, nil
	case '-':
		l.i++
		return Token{Kind: TokMinus, Text: "-", Pos: start}, nil
	case '*':
		l.i++
		return Token{Kind: TokStar, Text: "*", Pos: start}, nil
	case '/':
		l.i++
		return Token{Kind: TokSlash, Text: "/", Pos: start}, nil
	case '(':
		l.i++
		return Token{Kind: TokLParen, Text: "(", Pos: start}, nil
	case ')':
		l.i++
		return Token{Kind: TokRParen, Text: ")", Pos: start}, nil
	}

	if c := l.s[l.i]; c == '.' || isDigit(c) {
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		if txt == "." {
			return Token{}, &LexError{Pos: start, Char: '.'}
		}
		f, err := strconv.ParseFloat(txt, 64)
		if err != nil {
			// Only a value outside the float64 range gets here; keep the IEEE result.
			if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
				return Token{}, &LexError{Pos: start, Char: rune(txt[0])}
			}
		}
		return Token{Kind: TokNumber, Num: f, Text: txt, Pos: start}, nil
	}

	r, _ := utf8.DecodeRuneInString(l.s[l.i:])
	return Token{}, &LexError{Pos: start, Char: r}
}

// scanNumber returns the end of the numeric run starting at i: digits with at most one '.'.
func scanNumber(s string, i int) int {
	seenDot := false
	for i < len(s) {
		c := s[i]
		switch {
		case isDigit(c):
		case c == '.' && !seenDot:
			seenDot = true
		default:
			return i
		}
		i++
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool { return c < utf8.RuneSelf && unicode.IsSpace(rune(c)) }
