// Package errors provides the structured error types for the bytify library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Kind set is closed: it enumerates every way a compilation can
// fail. The Error type includes the context a caller needs to diagnose the
// failing element: the literal's source text, its sign, and the inferred and
// requested widths for suffix reconciliation failures.
//
// Use the convenience constructors:
//
//	err := errors.IncompatibleNumberSuffix("300", false, "u16", "u8")
//	err := errors.InvalidEndianness("xe")
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on the Phase/Kind pair.
package errors
