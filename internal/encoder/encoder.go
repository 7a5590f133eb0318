// Package encoder turns expression nodes into their flat byte encoding.
//
// One Encode call is one compilation pass: a single append-only output buffer,
// elements processed strictly in order, first failure aborts the pass.
package encoder

import (
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/bytify/errors"
	"github.com/wippyai/bytify/expr"
	"github.com/wippyai/bytify/internal/binary"
)

// Encode compiles the expression list into a single byte sequence.
func Encode(exprs []expr.Expr) ([]byte, error) {
	w := binary.NewWriter()
	for _, e := range exprs {
		if err := encodeElement(w, e); err != nil {
			return nil, err
		}
	}
	logger.Debug("encoded expression list",
		zap.Int("elements", len(exprs)),
		zap.Int("bytes", w.Len()))
	return w.Bytes(), nil
}

// EncodeTo compiles the expression list and writes the result to dst.
func EncodeTo(dst io.Writer, exprs []expr.Expr) error {
	out, err := Encode(exprs)
	if err != nil {
		return err
	}
	if _, err := dst.Write(out); err != nil {
		return errors.IO(err)
	}
	return nil
}

func encodeElement(w *binary.Writer, e expr.Expr) error {
	order := DefaultOrder

	// A byte-order tag applies to this element only.
	if tagged, ok := e.(*expr.Order); ok {
		switch tagged.Tag {
		case "be", "BE":
			order = binary.BigEndian
		case "le", "LE":
			order = binary.LittleEndian
		default:
			return errors.InvalidEndianness(tagged.Tag)
		}
		e = tagged.X
	}

	switch node := e.(type) {
	case *expr.Neg:
		return encodeNegated(w, order, node.X)
	case *expr.Int:
		return encodeInt(w, order, false, node)
	case *expr.Float:
		return encodeFloat(w, order, false, node)
	case *expr.Char:
		w.WriteRune(node.Value)
		return nil
	case *expr.Str:
		w.WriteString(node.Value)
		return nil
	case *expr.Bool:
		return errors.UnsupportedLit(node.Text)
	case nil:
		return errors.UnsupportedExpression("nil expression")
	}
	return errors.UnsupportedExpression(describe(e))
}

// encodeNegated handles a single level of arithmetic negation. Only numeric
// literals may be negated.
func encodeNegated(w *binary.Writer, order binary.ByteOrder, inner expr.Expr) error {
	switch node := inner.(type) {
	case *expr.Int:
		return encodeInt(w, order, true, node)
	case *expr.Float:
		return encodeFloat(w, order, true, node)
	}
	return errors.UnsupportedPrefixedExpression("-", describe(inner))
}

func encodeInt(w *binary.Writer, order binary.ByteOrder, negative bool, node *expr.Int) error {
	width, err := resolveIntWidth(node.Text, negative, node.Magnitude, node.Suffix)
	if err != nil {
		return err
	}

	v := node.Magnitude
	if negative {
		// Two's complement; truncation at the resolved width below keeps the
		// wraparound semantics per width.
		v = ^v + 1
	}

	switch width {
	case expr.U8, expr.I8:
		w.Byte(byte(v))
	case expr.U16, expr.I16:
		w.WriteU16(order, uint16(v))
	case expr.U32, expr.I32:
		w.WriteU32(order, uint32(v))
	case expr.U64, expr.I64:
		w.WriteU64(order, v)
	default:
		return errors.UnsupportedNumberSuffix(width.String())
	}

	logger.Debug("encoded integer",
		zap.String("lit", node.Text),
		zap.Bool("negative", negative),
		zap.Stringer("width", width))
	return nil
}

func encodeFloat(w *binary.Writer, order binary.ByteOrder, negative bool, node *expr.Float) error {
	width, err := resolveFloatWidth(node.Text, negative, node.Magnitude, node.Suffix)
	if err != nil {
		return err
	}

	v := node.Magnitude
	if negative {
		v = -v
	}

	switch width {
	case expr.F32:
		w.WriteF32(order, float32(v))
	case expr.F64:
		w.WriteF64(order, v)
	default:
		return errors.UnsupportedNumberSuffix(width.String())
	}

	logger.Debug("encoded float",
		zap.String("lit", node.Text),
		zap.Bool("negative", negative),
		zap.Stringer("width", width))
	return nil
}
