package bytify

import (
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/bytify/errors"
	"github.com/wippyai/bytify/expr"
	"github.com/wippyai/bytify/internal/encoder"
	"github.com/wippyai/bytify/internal/parser"
	"github.com/wippyai/bytify/internal/token"
)

// Compile parses a comma-separated literal list and encodes it into a byte
// sequence. Encoding is all-or-nothing: on error no output is returned.
func Compile(source string) ([]byte, error) {
	exprs, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return encoder.Encode(exprs)
}

// Parse parses a comma-separated literal list into expression nodes without
// encoding them.
func Parse(source string) ([]expr.Expr, error) {
	tokens := token.Tokenize(source)
	exprs, err := parser.New(tokens).Parse()
	if err != nil {
		return nil, errors.InvalidInput(err)
	}
	return exprs, nil
}

// Encode compiles an already-built expression list.
func Encode(exprs []expr.Expr) ([]byte, error) {
	return encoder.Encode(exprs)
}

// EncodeTo compiles an expression list and writes the result to dst. Write
// failures surface with error kind io.
func EncodeTo(dst io.Writer, exprs []expr.Expr) error {
	return encoder.EncodeTo(dst, exprs)
}

// SetLogger installs a logger for encoder debug tracing. The default is a
// no-op logger.
func SetLogger(l *zap.Logger) {
	encoder.SetLogger(l)
}
