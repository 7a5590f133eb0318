// Package token tokenizes the textual literal-list form.
package token

import (
	"unicode"
)

type Type int

const (
	Comma Type = iota
	Colon
	Minus
	LParen
	RParen
	Ident
	Number
	Char
	String
	Illegal
)

func (t Type) String() string {
	switch t {
	case Comma:
		return "','"
	case Colon:
		return "':'"
	case Minus:
		return "'-'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Ident:
		return "identifier"
	case Number:
		return "number"
	case Char:
		return "character"
	case String:
		return "string"
	case Illegal:
		return "illegal"
	}
	return "unknown"
}

type Token struct {
	Value string
	Type  Type
	Line  int
}

// Tokenize splits input into tokens. Character and string tokens keep their
// inner text verbatim; escape sequences are resolved by the parser.
func Tokenize(input string) []Token {
	var tokens []Token
	line := 1
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			line++
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}

		// Line comment
		if r == '/' && i+1 < len(runes) && runes[i+1] == '/' {
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			line++
			continue
		}

		switch r {
		case ',':
			tokens = append(tokens, Token{",", Comma, line})
			continue
		case ':':
			tokens = append(tokens, Token{":", Colon, line})
			continue
		case '-':
			tokens = append(tokens, Token{"-", Minus, line})
			continue
		case '(':
			tokens = append(tokens, Token{"(", LParen, line})
			continue
		case ')':
			tokens = append(tokens, Token{")", RParen, line})
			continue
		}

		// Character literal
		if r == '\'' {
			start := i + 1
			i++
			for i < len(runes) && runes[i] != '\'' {
				if runes[i] == '\\' {
					i++
				}
				i++
			}
			tokens = append(tokens, Token{string(runes[start:i]), Char, line})
			continue
		}

		// String literal
		if r == '"' {
			start := i + 1
			i++
			for i < len(runes) && runes[i] != '"' {
				if runes[i] == '\\' {
					i++
				}
				i++
			}
			tokens = append(tokens, Token{string(runes[start:i]), String, line})
			continue
		}

		// Number: digits, base prefixes, '_' separators, '.', suffix letters,
		// and an exponent sign directly after e/E
		if unicode.IsDigit(r) {
			start := i
			for i < len(runes) {
				c := runes[i]
				if unicode.IsDigit(c) || unicode.IsLetter(c) || c == '_' || c == '.' ||
					((c == '-' || c == '+') && i > start && (runes[i-1] == 'e' || runes[i-1] == 'E')) {
					i++
				} else {
					break
				}
			}
			tokens = append(tokens, Token{string(runes[start:i]), Number, line})
			i--
			continue
		}

		// Identifier
		if r == '_' || unicode.IsLetter(r) {
			start := i
			for i < len(runes) {
				c := runes[i]
				if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' {
					i++
				} else {
					break
				}
			}
			tokens = append(tokens, Token{string(runes[start:i]), Ident, line})
			i--
			continue
		}

		tokens = append(tokens, Token{string(r), Illegal, line})
	}

	return tokens
}
