// Package parser builds expression nodes from the token stream.
package parser

import (
	"fmt"
	"strings"

	"github.com/wippyai/bytify/expr"
	"github.com/wippyai/bytify/internal/token"
)

type Parser struct {
	tokens []token.Token
	pos    int
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes a comma-separated expression list. A trailing comma is
// allowed, matching the usual literal-list conventions.
func (p *Parser) Parse() ([]expr.Expr, error) {
	var list []expr.Expr
	for p.peek() != nil {
		e, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		list = append(list, e)

		t := p.peek()
		if t == nil {
			break
		}
		if t.Type != token.Comma {
			return nil, fmt.Errorf("line %d: expected %v, got %q", t.Line, token.Comma, t.Value)
		}
		p.next()
	}
	return list, nil
}

func (p *Parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *Parser) next() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *Parser) expect(typ token.Type) (*token.Token, error) {
	t := p.next()
	if t == nil {
		return nil, fmt.Errorf("unexpected end of input")
	}
	if t.Type != typ {
		return nil, fmt.Errorf("line %d: expected %v, got %q", t.Line, typ, t.Value)
	}
	return t, nil
}

// element := unary (':' ident)?
func (p *Parser) parseElement() (expr.Expr, error) {
	e, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil && t.Type == token.Colon {
		p.next()
		tag, err := p.expect(token.Ident)
		if err != nil {
			return nil, err
		}
		e = &expr.Order{Tag: tag.Value, X: e}
	}
	return e, nil
}

// unary := '-' unary | primary
//
// Nested negation parses fine; the encoder is the one that rejects it.
func (p *Parser) parseUnary() (expr.Expr, error) {
	if t := p.peek(); t != nil && t.Type == token.Minus {
		p.next()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &expr.Neg{X: inner}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (expr.Expr, error) {
	t := p.next()
	if t == nil {
		return nil, fmt.Errorf("unexpected end of input")
	}

	switch t.Type {
	case token.Number:
		return parseNumber(t)

	case token.Char:
		return parseChar(t)

	case token.String:
		value, err := unescape(t.Value, t.Line)
		if err != nil {
			return nil, err
		}
		return &expr.Str{Text: t.Value, Value: value}, nil

	case token.Ident:
		if n := p.peek(); n != nil && n.Type == token.LParen {
			return p.parseCall(t.Value)
		}
		if t.Value == "true" || t.Value == "false" {
			return &expr.Bool{Text: t.Value, Value: t.Value == "true"}, nil
		}
		return &expr.Ident{Name: t.Value}, nil

	case token.LParen:
		e, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return e, nil
	}

	return nil, fmt.Errorf("line %d: unexpected %v %q", t.Line, t.Type, t.Value)
}

// parseCall consumes a call-shaped expression. The encoder rejects these; the
// parser keeps them so the error can name the actual shape.
func (p *Parser) parseCall(fn string) (expr.Expr, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	call := &expr.Call{Fn: fn}
	for {
		t := p.peek()
		if t == nil {
			return nil, fmt.Errorf("unexpected end of input")
		}
		if t.Type == token.RParen {
			p.next()
			return call, nil
		}
		arg, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)

		t = p.peek()
		if t != nil && t.Type == token.Comma {
			p.next()
		}
	}
}

func parseChar(t *token.Token) (expr.Expr, error) {
	value, err := unescape(t.Value, t.Line)
	if err != nil {
		return nil, err
	}
	runes := []rune(value)
	if len(runes) != 1 {
		return nil, fmt.Errorf("line %d: character literal '%s' must hold exactly one scalar", t.Line, t.Value)
	}
	return &expr.Char{Text: t.Value, Value: runes[0]}, nil
}

func unescape(s string, line int) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' {
			b.WriteRune(r)
			continue
		}
		i++
		if i >= len(runes) {
			return "", fmt.Errorf("line %d: trailing backslash in literal", line)
		}
		switch runes[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '\'':
			b.WriteByte('\'')
		case '"':
			b.WriteByte('"')
		case '0':
			b.WriteByte(0)
		case 'x':
			if i+2 >= len(runes) {
				return "", fmt.Errorf("line %d: truncated \\x escape", line)
			}
			hi, okHi := hexDigit(runes[i+1])
			lo, okLo := hexDigit(runes[i+2])
			if !okHi || !okLo {
				return "", fmt.Errorf("line %d: invalid \\x escape", line)
			}
			b.WriteByte(byte(hi<<4 | lo))
			i += 2
		case 'u':
			if i+1 >= len(runes) || runes[i+1] != '{' {
				return "", fmt.Errorf("line %d: \\u escape requires {...}", line)
			}
			i += 2
			var v uint32
			digits := 0
			for i < len(runes) && runes[i] != '}' {
				d, ok := hexDigit(runes[i])
				if !ok || digits >= 6 {
					return "", fmt.Errorf("line %d: invalid \\u escape", line)
				}
				v = v<<4 | uint32(d)
				digits++
				i++
			}
			if i >= len(runes) || digits == 0 {
				return "", fmt.Errorf("line %d: unterminated \\u escape", line)
			}
			b.WriteRune(rune(v))
		default:
			return "", fmt.Errorf("line %d: unknown escape \\%c", line, runes[i])
		}
	}
	return b.String(), nil
}

func hexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}
