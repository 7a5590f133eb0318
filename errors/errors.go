package errors

import (
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // literal-list parsing
	PhaseEncode Phase = "encode" // width inference and byte emission
)

// Kind categorizes the error. The set is closed.
type Kind string

const (
	KindUnsupportedExpression         Kind = "unsupported_expression"
	KindUnsupportedPrefixedExpression Kind = "unsupported_prefixed_expression"
	KindUnsupportedLit                Kind = "unsupported_lit"
	KindUnsupportedNumberSuffix       Kind = "unsupported_number_suffix"
	KindInvalidInput                  Kind = "invalid_input"
	KindInvalidEndianness             Kind = "invalid_endianness"
	KindIncompatibleNumberSuffix      Kind = "incompatible_number_suffix"
	KindIO                            Kind = "io"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Lit       string // source text of the failing literal
	Inferred  string // inferred minimal width
	Requested string // explicitly requested width
	Detail    string
	Negative  bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Lit != "" {
		b.WriteString(": literal ")
		b.WriteString(strconv.Quote(e.Lit))
		if e.Negative {
			b.WriteString(" (negative)")
		}
	}

	if e.Inferred != "" || e.Requested != "" {
		b.WriteString(" - inferred ")
		b.WriteString(e.Inferred)
		b.WriteString(", requested ")
		b.WriteString(e.Requested)
	}

	if e.Detail != "" {
		if e.Lit != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors, one per taxonomy entry

// UnsupportedExpression reports an expression shape outside the three the
// encoder accepts.
func UnsupportedExpression(shape string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnsupportedExpression,
		Detail: shape,
	}
}

// UnsupportedPrefixedExpression reports a unary operator applied to an
// operand that cannot be negated.
func UnsupportedPrefixedExpression(op, operand string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnsupportedPrefixedExpression,
		Detail: op + " applied to " + operand,
	}
}

// UnsupportedLit reports a literal of a kind the encoder does not handle.
func UnsupportedLit(lit string) *Error {
	return &Error{
		Phase: PhaseEncode,
		Kind:  KindUnsupportedLit,
		Lit:   lit,
	}
}

// UnsupportedNumberSuffix reports a resolved width outside the numeric
// enumeration. Reaching it means an inference invariant was broken.
func UnsupportedNumberSuffix(width string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnsupportedNumberSuffix,
		Detail: width,
	}
}

// InvalidInput reports a malformed expression list.
func InvalidInput(cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidInput,
		Detail: "failed to parse the input as a comma-separated list",
		Cause:  cause,
	}
}

// InvalidEndianness reports an unrecognized byte-order tag spelling.
func InvalidEndianness(tag string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindInvalidEndianness,
		Detail: strconv.Quote(tag),
	}
}

// IncompatibleNumberSuffix reports a failed reconciliation between the
// inferred minimal width and an explicitly requested one.
func IncompatibleNumberSuffix(lit string, negative bool, inferred, requested string) *Error {
	return &Error{
		Phase:     PhaseEncode,
		Kind:      KindIncompatibleNumberSuffix,
		Lit:       lit,
		Negative:  negative,
		Inferred:  inferred,
		Requested: requested,
	}
}

// IO reports a failure while writing the output.
func IO(cause error) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindIO,
		Detail: "failed to write a value",
		Cause:  cause,
	}
}
