// Package expr defines the expression nodes consumed by the bytify encoder.
//
// Nodes are produced either by the built-in textual front end or by any other
// collaborator that wants to drive the encoder directly. The encoder accepts
// exactly three shapes: a literal, a single-level negation of a literal, and a
// byte-order tag wrapping one of those. The remaining node types exist so that
// front ends can represent rejected input faithfully and let the encoder
// report the precise failure.
package expr

// Expr is implemented by all expression nodes.
type Expr interface {
	expr()
}

// Int is an integer literal. The magnitude is always non-negative; a leading
// minus sign in source becomes a wrapping Neg node.
type Int struct {
	Text      string // literal as written, for diagnostics
	Magnitude uint64
	Suffix    Suffix
}

// Float is a floating-point literal. Like Int, the magnitude carries no sign.
type Float struct {
	Text      string
	Magnitude float64
	Suffix    Suffix
}

// Char is a character literal holding a single Unicode scalar.
type Char struct {
	Text  string
	Value rune
}

// Str is a string literal.
type Str struct {
	Text  string
	Value string
}

// Bool is a boolean literal. Recognized by the front end but never
// encodable.
type Bool struct {
	Text  string
	Value bool
}

// Neg is a unary arithmetic negation of its operand.
type Neg struct {
	X Expr
}

// Order wraps an expression with a byte-order tag. The tag is kept verbatim;
// the encoder decides which spellings are valid.
type Order struct {
	Tag string
	X   Expr
}

// Ident is a bare identifier. Never encodable.
type Ident struct {
	Name string
}

// Call is a call-shaped expression. Never encodable.
type Call struct {
	Fn   string
	Args []Expr
}

func (*Int) expr()   {}
func (*Float) expr() {}
func (*Char) expr()  {}
func (*Str) expr()   {}
func (*Bool) expr()  {}
func (*Neg) expr()   {}
func (*Order) expr() {}
func (*Ident) expr() {}
func (*Call) expr()  {}
