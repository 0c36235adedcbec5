package pluralforms

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	eofTok tokenKind = iota
	numTok
	varTok
	opTok
	invalidTok
)

type token struct {
	kind tokenKind
	op   string
	num  int
	pos  int
}

type lexer struct {
	data string
	pos  int
}

func (l *lexer) Lex() token {
	for l.pos < len(l.data) && (l.data[l.pos] == ' ' || l.data[l.pos] == '\t') {
		l.pos += 1
	}
	if l.pos >= len(l.data) {
		return token{kind: eofTok, pos: l.pos}
	}

	pos := l.pos
	c := l.data[pos]
	l.pos += 1
	next := func(want byte) bool {
		if l.pos < len(l.data) && l.data[l.pos] == want {
			l.pos += 1
			return true
		}
		return false
	}
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		for l.pos < len(l.data) && l.data[l.pos] >= '0' && l.data[l.pos] <= '9' {
			l.pos += 1
		}
		num, err := strconv.ParseInt(l.data[pos:l.pos], 10, 32)
		if err != nil {
			return token{kind: invalidTok, pos: pos}
		}
		return token{kind: numTok, num: int(num), pos: pos}
	case 'n':
		return token{kind: varTok, pos: pos}
	case '=':
		if next('=') {
			return token{kind: opTok, op: "==", pos: pos}
		}
		return token{kind: invalidTok, pos: pos}
	case '!':
		if next('=') {
			return token{kind: opTok, op: "!=", pos: pos}
		}
		return token{kind: opTok, op: "!", pos: pos}
	case '&', '|':
		if next(c) {
			return token{kind: opTok, op: string([]byte{c, c}), pos: pos}
		}
		return token{kind: invalidTok, pos: pos}
	case '<', '>':
		if next('=') {
			return token{kind: opTok, op: string([]byte{c, '='}), pos: pos}
		}
		return token{kind: opTok, op: string(c), pos: pos}
	case '?', ':', '(', ')', '*', '/', '%', '+', '-':
		return token{kind: opTok, op: string(c), pos: pos}
	case ';', '\n':
		return token{kind: eofTok, pos: pos}
	default:
		return token{kind: invalidTok, pos: pos}
	}
}

// binding strength of the C binary operators allowed in plural expressions
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

type parser struct {
	lex lexer
	tok token
}

func (p *parser) advance() {
	p.tok = p.lex.Lex()
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("cannot parse expression: %s at offset %d", fmt.Sprintf(format, args...), p.tok.pos)
}

func (p *parser) isOp(op string) bool {
	return p.tok.kind == opTok && p.tok.op == op
}

func (p *parser) expect(op string) error {
	if !p.isOp(op) {
		return p.errorf("expected %q", op)
	}
	p.advance()
	return nil
}

func (p *parser) parseTernary() (Expression, error) {
	test, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	if !p.isOp("?") {
		return test, nil
	}
	p.advance()
	ifTrue, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if err := p.expect(":"); err != nil {
		return nil, err
	}
	ifFalse, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	return ternaryExpr{test: test, ifTrue: ifTrue, ifFalse: ifFalse}, nil
}

func (p *parser) parseBinary(minPrec int) (Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == opTok {
		op := p.tok.op
		prec, ok := precedence[op]
		if !ok || prec < minPrec {
			break
		}
		p.advance()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = binary(op, left, right)
	}
	return left, nil
}

func (p *parser) parseUnary() (Expression, error) {
	switch p.tok.kind {
	case numTok:
		e := numberExpr{p.tok.num}
		p.advance()
		return e, nil
	case varTok:
		p.advance()
		return varExpr{}, nil
	case opTok:
		switch p.tok.op {
		case "!":
			p.advance()
			sub, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			return notExpr{sub}, nil
		case "(":
			p.advance()
			e, err := p.parseTernary()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			return e, nil
		}
		return nil, p.errorf("unexpected %q", p.tok.op)
	case eofTok:
		return nil, p.errorf("unexpected end of expression")
	}
	return nil, p.errorf("invalid token")
}

func binary(op string, left, right Expression) Expression {
	b := binaryExpr{left: left, right: right}
	switch op {
	case "||":
		return orExpr(b)
	case "&&":
		return andExpr(b)
	case "==":
		return eqExpr(b)
	case "!=":
		return neExpr(b)
	case "<":
		return ltExpr(b)
	case "<=":
		return lteExpr(b)
	case ">":
		return gtExpr(b)
	case ">=":
		return gteExpr(b)
	case "+":
		return addExpr(b)
	case "-":
		return subExpr(b)
	case "*":
		return mulExpr(b)
	case "/":
		return divExpr(b)
	default:
		return modExpr(b)
	}
}

// Compile a string containing a plural form expression to a Expression object.
func Compile(expr string) (Expression, error) {
	p := parser{lex: lexer{data: expr}}
	p.advance()
	e, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != eofTok {
		return nil, p.errorf("trailing input")
	}
	return e, nil
}

// ParseHeader parses a gettext style Plural-Forms value such as
// "nplurals=2; plural=(n != 1);".
func ParseHeader(header string) (nplurals int, expr Expression, err error) {
	nplurals = -1
	for _, field := range strings.Split(header, ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		kv := strings.SplitN(field, "=", 2)
		if len(kv) != 2 {
			return 0, nil, fmt.Errorf("malformed plural forms field %q", field)
		}
		switch strings.TrimSpace(kv[0]) {
		case "nplurals":
			nplurals, err = strconv.Atoi(strings.TrimSpace(kv[1]))
			if err != nil || nplurals < 1 {
				return 0, nil, fmt.Errorf("invalid nplurals in %q", header)
			}
		case "plural":
			expr, err = Compile(kv[1])
			if err != nil {
				return 0, nil, err
			}
		}
	}
	if nplurals < 0 || expr == nil {
		return 0, nil, fmt.Errorf("incomplete plural forms %q", header)
	}
	return nplurals, expr, nil
}
