// Package binary provides the append-only byte writer backing one
// compilation pass.
package binary

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// ByteOrder selects the byte layout of multi-byte numeric writes.
type ByteOrder = binary.ByteOrder

var (
	LittleEndian ByteOrder = binary.LittleEndian
	BigEndian    ByteOrder = binary.BigEndian
)

// Writer accumulates encoded output. Writes only ever append.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteU16 writes a fixed 2-byte value in the given order.
func (w *Writer) WriteU16(bo ByteOrder, v uint16) {
	var buf [2]byte
	bo.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU32 writes a fixed 4-byte value in the given order.
func (w *Writer) WriteU32(bo ByteOrder, v uint32) {
	var buf [4]byte
	bo.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU64 writes a fixed 8-byte value in the given order.
func (w *Writer) WriteU64(bo ByteOrder, v uint64) {
	var buf [8]byte
	bo.PutUint64(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteF32 writes an IEEE-754 binary32 value in the given order.
func (w *Writer) WriteF32(bo ByteOrder, v float32) {
	w.WriteU32(bo, math.Float32bits(v))
}

// WriteF64 writes an IEEE-754 binary64 value in the given order.
func (w *Writer) WriteF64(bo ByteOrder, v float64) {
	w.WriteU64(bo, math.Float64bits(v))
}

// WriteRune writes a single Unicode scalar as UTF-8 (1-4 bytes).
func (w *Writer) WriteRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	w.buf.Write(buf[:n])
}

// WriteString writes the UTF-8 bytes of s with no length prefix or terminator.
func (w *Writer) WriteString(s string) {
	w.buf.WriteString(s)
}

// WriteTo flushes the accumulated bytes to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	return w.buf.WriteTo(dst)
}
