// Package bytify compiles a comma-separated list of typed literal
// expressions into one flat, ordered byte sequence.
//
// It lets a caller author binary blobs with native literal syntax instead of
// computing byte encodings by hand: integers, floats, characters and strings,
// each optionally negated and optionally tagged with a byte order, are
// encoded back-to-back in input order.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	bytify/              Root package: Compile, Encode, EncodeTo
//	├── expr/            Expression nodes consumed by the encoder
//	├── errors/          Structured error types (closed failure taxonomy)
//	├── internal/
//	│   ├── token/       Tokenizer for the textual literal-list form
//	│   ├── parser/      Tokens to expression nodes
//	│   ├── binary/      Append-only byte writer
//	│   └── encoder/     Width inference and byte emission
//	└── cmd/bytify/      Developer CLI with interactive mode
//
// # Quick Start
//
// Compile a textual literal list:
//
//	out, err := bytify.Compile(`-22i16, 0xFFu32: BE, 'a', "hello"`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or drive the encoder with expression nodes built elsewhere:
//
//	out, err := bytify.Encode([]expr.Expr{
//	    &expr.Int{Text: "1", Magnitude: 1, Suffix: expr.U16},
//	})
//
// Numeric literals without a width suffix encode at the smallest width that
// holds the value. An explicit suffix may only widen: narrowing or ambiguous
// casts fail with an incompatible_number_suffix error. The default byte order
// is little-endian; build with -tags bigendiandefault to flip it, and tag
// individual elements with `: BE` or `: LE` to override per element.
package bytify
