package expr

type parser struct {
	toks []Token
	i    int
	cur  Token
}

// Parse builds an expression tree from tokens produced by Tokenize.
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := '-' unary | primary
//	primary := NUMBER | '(' expr ')'
func Parse(toks []Token) (Node, error) {
	if len(toks) == 0 || toks[0].Kind == TokEnd {
		pos := 0
		if len(toks) > 0 {
			pos = toks[0].Pos
		}
		return nil, &ParseError{Kind: ParseEmpty, Pos: pos}
	}

	p := &parser{toks: toks}
	p.cur = toks[0]
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	switch p.cur.Kind {
	case TokEnd:
		return n, nil
	case TokRParen:
		return nil, &ParseError{Kind: ParseUnmatchedParen, Token: p.cur, Pos: p.cur.Pos}
	default:
		return nil, p.unexpected()
	}
}

func (p *parser) next() {
	if p.i+1 < len(p.toks) {
		p.i++
		p.cur = p.toks[p.i]
		return
	}
	// Missing terminator: behave as if the slice ended with TokEnd.
	end := 0
	if n := len(p.toks); n > 0 {
		last := p.toks[n-1]
		end = last.Pos + len(last.Text)
	}
	p.i = len(p.toks)
	p.cur = Token{Kind: TokEnd, Pos: end}
}

func (p *parser) unexpected() error {
	if p.cur.Kind == TokEnd {
		return &ParseError{Kind: ParseUnexpectedEnd, Token: p.cur, Pos: p.cur.Pos}
	}
	return &ParseError{Kind: ParseUnexpectedToken, Token: p.cur, Pos: p.cur.Pos}
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokPlus || p.cur.Kind == TokMinus {
		op := OpAdd
		if p.cur.Kind == TokMinus {
			op = OpSub
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokStar || p.cur.Kind == TokSlash {
		op := OpMul
		if p.cur.Kind == TokSlash {
			op = OpDiv
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Node, error) {
	if p.cur.Kind == TokMinus {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Negate{X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	switch p.cur.Kind {
	case TokNumber:
		v := p.cur.Num
		p.next()
		return Literal(v), nil
	case TokLParen:
		open := p.cur
		p.next()
		ex, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind != TokRParen {
			if p.cur.Kind == TokEnd {
				return nil, &ParseError{Kind: ParseUnmatchedParen, Token: open, Pos: open.Pos}
			}
			return nil, p.unexpected()
		}
		p.next()
		return ex, nil
	default:
		return nil, p.unexpected()
	}
}
