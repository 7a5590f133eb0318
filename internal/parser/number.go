package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/bytify/expr"
	"github.com/wippyai/bytify/internal/token"
)

var intSuffixes = map[string]expr.Suffix{
	"":    expr.SuffixNone,
	"u8":  expr.U8,
	"u16": expr.U16,
	"u32": expr.U32,
	"u64": expr.U64,
	"i8":  expr.I8,
	"i16": expr.I16,
	"i32": expr.I32,
	"i64": expr.I64,
}

// parseNumber splits a number token into magnitude and width suffix. The
// magnitude is always non-negative; signs live in surrounding Neg nodes.
func parseNumber(t *token.Token) (expr.Expr, error) {
	s := strings.ReplaceAll(t.Value, "_", "")

	base := 10
	body := s
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		base, body = 16, s[2:]
	case strings.HasPrefix(s, "0o") || strings.HasPrefix(s, "0O"):
		base, body = 8, s[2:]
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		base, body = 2, s[2:]
	}

	if base == 10 && isFloatBody(body) {
		return parseFloat(t, body)
	}

	digits := body
	for j, r := range body {
		if !isBaseDigit(r, base) {
			digits = body[:j]
			break
		}
	}
	rest := body[len(digits):]

	suffix, ok := intSuffixes[rest]
	if !ok || digits == "" {
		return nil, fmt.Errorf("line %d: malformed number literal %q", t.Line, t.Value)
	}
	magnitude, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return nil, fmt.Errorf("line %d: integer literal %q out of 64-bit range", t.Line, t.Value)
	}
	return &expr.Int{Text: t.Value, Magnitude: magnitude, Suffix: suffix}, nil
}

// isFloatBody reports whether a base-10 body is a float literal: it has a
// fractional part, an exponent, or an explicit float suffix.
func isFloatBody(body string) bool {
	return strings.ContainsAny(body, ".eE") ||
		strings.HasSuffix(body, "f32") || strings.HasSuffix(body, "f64")
}

func parseFloat(t *token.Token, body string) (expr.Expr, error) {
	suffix := expr.SuffixNone
	switch {
	case strings.HasSuffix(body, "f32"):
		suffix, body = expr.F32, body[:len(body)-3]
	case strings.HasSuffix(body, "f64"):
		suffix, body = expr.F64, body[:len(body)-3]
	}
	magnitude, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return nil, fmt.Errorf("line %d: malformed float literal %q", t.Line, t.Value)
	}
	return &expr.Float{Text: t.Value, Magnitude: magnitude, Suffix: suffix}, nil
}

func isBaseDigit(r rune, base int) bool {
	switch base {
	case 2:
		return r == '0' || r == '1'
	case 8:
		return r >= '0' && r <= '7'
	case 16:
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	}
	return r >= '0' && r <= '9'
}
