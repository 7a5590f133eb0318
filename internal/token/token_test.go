package token

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{"empty", "", nil},
		{"single_int", "42", []Token{{"42", Number, 1}}},
		{"suffixed_int", "200u16", []Token{{"200u16", Number, 1}}},
		{"hex", "0xFFu32", []Token{{"0xFFu32", Number, 1}}},
		{"underscores", "1_000_000", []Token{{"1_000_000", Number, 1}}},
		{"float_exponent", "3.40282347e+38", []Token{{"3.40282347e+38", Number, 1}}},
		{"negative_exponent", "1e-5", []Token{{"1e-5", Number, 1}}},
		{"negated", "-5i8", []Token{{"-", Minus, 1}, {"5i8", Number, 1}}},
		{"list", "1, 2", []Token{{"1", Number, 1}, {",", Comma, 1}, {"2", Number, 1}}},
		{"order_tag", "1u16: BE", []Token{{"1u16", Number, 1}, {":", Colon, 1}, {"BE", Ident, 1}}},
		{"char", "'a'", []Token{{"a", Char, 1}}},
		{"escaped_char", `'\n'`, []Token{{`\n`, Char, 1}}},
		{"escaped_quote_char", `'\''`, []Token{{`\'`, Char, 1}}},
		{"string", `"hello"`, []Token{{"hello", String, 1}}},
		{"escaped_string", `"a\"b"`, []Token{{`a\"b`, String, 1}}},
		{"ident", "foo", []Token{{"foo", Ident, 1}}},
		{"parens", "(1)", []Token{{"(", LParen, 1}, {"1", Number, 1}, {")", RParen, 1}}},
		{"comment", "1, // trailing\n2", []Token{{"1", Number, 1}, {",", Comma, 1}, {"2", Number, 2}}},
		{"line_tracking", "1,\n\n2", []Token{{"1", Number, 1}, {",", Comma, 1}, {"2", Number, 3}}},
		{"illegal", "@", []Token{{"@", Illegal, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(tt.want))
			}
			for i, w := range tt.want {
				if got[i] != w {
					t.Errorf("token %d: got %+v, want %+v", i, got[i], w)
				}
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	types := []Type{Comma, Colon, Minus, LParen, RParen, Ident, Number, Char, String, Illegal}
	for _, typ := range types {
		if typ.String() == "unknown" {
			t.Errorf("type %d has no name", typ)
		}
	}
}
