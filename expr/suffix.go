package expr

// Suffix is a numeric width annotation. It doubles as the resolved encoding
// width: the encoder's width inference always lands on one of these values.
type Suffix int

const (
	SuffixNone Suffix = iota
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
)

func (s Suffix) String() string {
	switch s {
	case SuffixNone:
		return "none"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	}
	return "unknown"
}

// Size returns the encoded size in bytes, or 0 for SuffixNone.
func (s Suffix) Size() int {
	switch s {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, F64:
		return 8
	}
	return 0
}
