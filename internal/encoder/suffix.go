package encoder

import (
	"github.com/wippyai/bytify/errors"
	"github.com/wippyai/bytify/expr"
)

// minIntWidth returns the smallest width able to hold the magnitude. Negative
// values compare the magnitude against the signed boundaries, where the
// minimum representable negative value carries one more unit of magnitude
// than the maximum positive one.
func minIntWidth(negative bool, magnitude uint64) expr.Suffix {
	if negative {
		switch {
		case magnitude > 0x80000000:
			return expr.I64
		case magnitude > 0x8000:
			return expr.I32
		case magnitude > 0x80:
			return expr.I16
		default:
			return expr.I8
		}
	}
	switch {
	case magnitude > 0xFFFFFFFF:
		return expr.U64
	case magnitude > 0xFFFF:
		return expr.U32
	case magnitude > 0xFF:
		return expr.U16
	default:
		return expr.U8
	}
}

type cast struct {
	min, requested expr.Suffix
}

// wideningCasts enumerates every unconditionally safe (minimal, requested)
// pair: same-family widenings plus unsigned values promoted into a strictly
// larger signed width. Anything absent from this table and from
// signedCeilings is a narrowing or ambiguous cast and is rejected.
var wideningCasts = map[cast]expr.Suffix{
	// Uint -> Uint
	{expr.U8, expr.U8}:   expr.U8,
	{expr.U8, expr.U16}:  expr.U16,
	{expr.U8, expr.U32}:  expr.U32,
	{expr.U8, expr.U64}:  expr.U64,
	{expr.U16, expr.U16}: expr.U16,
	{expr.U16, expr.U32}: expr.U32,
	{expr.U16, expr.U64}: expr.U64,
	{expr.U32, expr.U32}: expr.U32,
	{expr.U32, expr.U64}: expr.U64,
	{expr.U64, expr.U64}: expr.U64,
	// Sint -> Sint
	{expr.I8, expr.I8}:   expr.I8,
	{expr.I8, expr.I16}:  expr.I16,
	{expr.I8, expr.I32}:  expr.I32,
	{expr.I8, expr.I64}:  expr.I64,
	{expr.I16, expr.I16}: expr.I16,
	{expr.I16, expr.I32}: expr.I32,
	{expr.I16, expr.I64}: expr.I64,
	{expr.I32, expr.I32}: expr.I32,
	{expr.I32, expr.I64}: expr.I64,
	{expr.I64, expr.I64}: expr.I64,
	// Uint -> larger Sint, always fits
	{expr.U8, expr.I16}:  expr.I16,
	{expr.U8, expr.I32}:  expr.I32,
	{expr.U8, expr.I64}:  expr.I64,
	{expr.U16, expr.I32}: expr.I32,
	{expr.U16, expr.I64}: expr.I64,
	{expr.U32, expr.I64}: expr.I64,
}

// signedCeilings holds the same-size unsigned-to-signed casts, allowed only
// when the magnitude sits strictly below the signed maximum of that size.
var signedCeilings = map[cast]uint64{
	{expr.U8, expr.I8}:   0x80,
	{expr.U16, expr.I16}: 0x8000,
	{expr.U32, expr.I32}: 0x80000000,
	{expr.U64, expr.I64}: 0x8000000000000000,
}

// resolveIntWidth reconciles the minimal width with an optional explicit
// suffix under the widening-only rule.
func resolveIntWidth(lit string, negative bool, magnitude uint64, requested expr.Suffix) (expr.Suffix, error) {
	min := minIntWidth(negative, magnitude)
	if requested == expr.SuffixNone {
		return min, nil
	}
	if resolved, ok := wideningCasts[cast{min, requested}]; ok {
		return resolved, nil
	}
	if ceiling, ok := signedCeilings[cast{min, requested}]; ok && magnitude < ceiling {
		return requested, nil
	}
	return expr.SuffixNone, errors.IncompatibleNumberSuffix(lit, negative, min.String(), requested.String())
}

// maxF32 is the float width-inference boundary. Kept as the historical
// approximate threshold rather than the exact largest finite binary32 value.
const maxF32 = 3.40282347e+38

// resolveFloatWidth reconciles the minimal float width with an optional
// explicit suffix. The only cross-width cast is F32 -> F64.
func resolveFloatWidth(lit string, negative bool, magnitude float64, requested expr.Suffix) (expr.Suffix, error) {
	min := expr.F32
	if magnitude > maxF32 {
		min = expr.F64
	}
	switch {
	case requested == expr.SuffixNone:
		return min, nil
	case requested == min:
		return min, nil
	case min == expr.F32 && requested == expr.F64:
		return expr.F64, nil
	}
	return expr.SuffixNone, errors.IncompatibleNumberSuffix(lit, negative, min.String(), requested.String())
}
