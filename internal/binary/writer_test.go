package binary

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriterFixedWidth(t *testing.T) {
	tests := []struct {
		name  string
		write func(w *Writer)
		want  []byte
	}{
		{"byte", func(w *Writer) { w.Byte(0xAB) }, []byte{0xAB}},
		{"u16_le", func(w *Writer) { w.WriteU16(LittleEndian, 0x0102) }, []byte{0x02, 0x01}},
		{"u16_be", func(w *Writer) { w.WriteU16(BigEndian, 0x0102) }, []byte{0x01, 0x02}},
		{"u32_le", func(w *Writer) { w.WriteU32(LittleEndian, 0x01020304) }, []byte{0x04, 0x03, 0x02, 0x01}},
		{"u32_be", func(w *Writer) { w.WriteU32(BigEndian, 0x01020304) }, []byte{0x01, 0x02, 0x03, 0x04}},
		{"u64_le", func(w *Writer) { w.WriteU64(LittleEndian, 0x0102030405060708) },
			[]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}},
		{"u64_be", func(w *Writer) { w.WriteU64(BigEndian, 0x0102030405060708) },
			[]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}},
		{"f32_le", func(w *Writer) { w.WriteF32(LittleEndian, 1.5) }, []byte{0x00, 0x00, 0xC0, 0x3F}},
		{"f32_be", func(w *Writer) { w.WriteF32(BigEndian, 1.5) }, []byte{0x3F, 0xC0, 0x00, 0x00}},
		{"f64_le", func(w *Writer) { w.WriteF64(LittleEndian, 1.5) },
			[]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF8, 0x3F}},
		{"bytes", func(w *Writer) { w.WriteBytes([]byte{1, 2, 3}) }, []byte{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			tt.write(w)
			if !bytes.Equal(w.Bytes(), tt.want) {
				t.Errorf("got % x, want % x", w.Bytes(), tt.want)
			}
		})
	}
}

func TestWriterUTF8(t *testing.T) {
	w := NewWriter()
	w.WriteRune('a')
	w.WriteRune('é')
	w.WriteRune('€')
	w.WriteRune('🎉')
	want := []byte{0x61, 0xC3, 0xA9, 0xE2, 0x82, 0xAC, 0xF0, 0x9F, 0x8E, 0x89}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("got % x, want % x", w.Bytes(), want)
	}

	w = NewWriter()
	w.WriteString("héllo")
	if got := w.Bytes(); len(got) != 6 {
		t.Errorf("string length %d, want 6", len(got))
	}
}

func TestWriterAppendsInOrder(t *testing.T) {
	w := NewWriter()
	w.Byte(0x01)
	w.WriteU16(BigEndian, 0x0203)
	w.WriteString("x")
	want := []byte{0x01, 0x02, 0x03, 'x'}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("got % x, want % x", w.Bytes(), want)
	}
	if w.Len() != 4 {
		t.Errorf("Len = %d, want 4", w.Len())
	}
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return 0, errors.New("short write")
}

func TestWriteTo(t *testing.T) {
	w := NewWriter()
	w.WriteBytes([]byte{1, 2, 3})

	var buf bytes.Buffer
	n, err := w.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != 3 || !bytes.Equal(buf.Bytes(), []byte{1, 2, 3}) {
		t.Errorf("wrote %d bytes: % x", n, buf.Bytes())
	}

	w = NewWriter()
	w.Byte(0xFF)
	if _, err := w.WriteTo(shortWriter{}); err == nil {
		t.Error("expected error from failing sink")
	}
}
