package expr

import "testing"

func TestSuffixString(t *testing.T) {
	tests := []struct {
		s    Suffix
		want string
	}{
		{SuffixNone, "none"},
		{U8, "u8"},
		{U64, "u64"},
		{I8, "i8"},
		{I64, "i64"},
		{F32, "f32"},
		{F64, "f64"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Suffix(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestSuffixSize(t *testing.T) {
	tests := []struct {
		s    Suffix
		want int
	}{
		{SuffixNone, 0},
		{U8, 1}, {I8, 1},
		{U16, 2}, {I16, 2},
		{U32, 4}, {I32, 4}, {F32, 4},
		{U64, 8}, {I64, 8}, {F64, 8},
	}
	for _, tt := range tests {
		if got := tt.s.Size(); got != tt.want {
			t.Errorf("%v.Size() = %d, want %d", tt.s, got, tt.want)
		}
	}
}
