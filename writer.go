package sol

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer is a seekable, growable in-memory sink that simplifies writing
// big-endian binary data. It tracks the first error that occurs; after an
// error, all subsequent write operations become no-ops.
//
// Writes at a position before the end overwrite existing bytes, which is what
// makes the reserve-then-patch pattern of length fields possible.
type Writer struct {
	b     []byte
	pos   int
	err   error // first error encountered. Subsequent writes become no-ops.
	order binary.ByteOrder
}

var (
	_ io.Writer       = (*Writer)(nil)
	_ io.ByteWriter   = (*Writer)(nil)
	_ io.StringWriter = (*Writer)(nil)
	_ io.Seeker       = (*Writer)(nil)
	_ io.WriterTo     = (*Writer)(nil)
)

// NewWriter creates a Writer that appends to buf[:0], reusing its capacity.
func NewWriter(buf []byte) *Writer {
	return &Writer{b: buf[:0], order: Order}
}

// WithByteOrder allows setting a custom byte order and returns
// the configured for chaining.
func (w *Writer) WithByteOrder(order binary.ByteOrder) *Writer {
	w.order = order
	return w
}

// Write implements the io.Writer interface.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.put(p)
	return len(p), nil
}

// WriteString implements the io.StringWriter interface.
func (w *Writer) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	end := w.pos + len(s)
	w.grow(end)
	copy(w.b[w.pos:end], s)
	w.pos = end
	return len(s), nil
}

// WriteByte implements the io.ByteWriter interface.
func (w *Writer) WriteByte(c byte) error {
	if w.err != nil {
		return w.err
	}
	w.grow(w.pos + 1)
	w.b[w.pos] = c
	w.pos++
	return nil
}

// Seek implements the io.Seeker interface. The position may not move past
// the end of the written data, so no gap of undefined bytes can appear.
func (w *Writer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(w.pos) + offset
	case io.SeekEnd:
		abs = int64(len(w.b)) + offset
	default:
		return int64(w.pos), ErrInvalidWhence
	}
	if abs < 0 || abs > int64(len(w.b)) {
		return int64(w.pos), ErrInvalidSeek
	}
	w.pos = int(abs)
	return abs, nil
}

// WriteTo implements io.WriterTo, copying everything written so far to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	if w.err != nil {
		return 0, w.err
	}
	if dst == nil {
		return 0, ErrNilIO
	}
	n, err := dst.Write(w.b)
	if err == nil && n < len(w.b) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

func (w *Writer) Pos() int   { return w.pos }
func (w *Writer) Len() int   { return len(w.b) }
func (w *Writer) Err() error { return w.err }

// Bytes returns a slice view of the written data.
func (w *Writer) Bytes() []byte { return w.b }

// Reset discards the written data but keeps the capacity and clears the error.
func (w *Writer) Reset() {
	w.b = w.b[:0]
	w.pos = 0
	w.err = nil
}

// Result returns the written bytes and the final error state.
func (w *Writer) Result() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.b, nil
}

// setError records the first non-nil error.
// This preserves the root cause of a failure chain instead of a later,
// less relevant error.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// grow makes sure b has at least n bytes.
func (w *Writer) grow(n int) {
	if n <= len(w.b) {
		return
	}
	if n <= cap(w.b) {
		w.b = w.b[:n]
		return
	}
	w.b = append(w.b, make([]byte, n-len(w.b))...)
}

func (w *Writer) put(p []byte) {
	end := w.pos + len(p)
	w.grow(end)
	copy(w.b[w.pos:end], p)
	w.pos = end
}

// Reserve writes n zero bytes as a placeholder and returns their offset.
func (w *Writer) Reserve(n int) int {
	off := w.pos
	w.WriteZeros(n)
	return off
}

// PatchUint32 seeks back to off, overwrites four bytes with v and returns
// to where it was. Bytes written after the placeholder are untouched.
func (w *Writer) PatchUint32(off int, v uint32) {
	if w.err != nil {
		return
	}
	if off < 0 || off+4 > len(w.b) {
		w.setError(ErrInvalidSeek)
		return
	}
	cur := w.pos
	w.pos = off
	w.WriteUint32(v)
	w.pos = cur
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(buf []byte) {
	if len(buf) == 0 || w.err != nil {
		return
	}
	w.put(buf)
}

// WriteZeros writes n zero bytes, often for padding.
func (w *Writer) WriteZeros(n int) {
	if w.err != nil || n <= 0 {
		return
	}
	end := w.pos + n
	w.grow(end)
	clear(w.b[w.pos:end])
	w.pos = end
}

// WriteFixed encodes a fixed-size struct (no slices, maps or strings) in the
// writer's byte order.
func (w *Writer) WriteFixed(v any) {
	if w.err != nil {
		return
	}
	if binary.Size(v) < 0 {
		w.setError(ErrUnexpectedType)
		return
	}
	buf, err := binary.Append(nil, w.order, v)
	if err != nil {
		w.setError(err)
		return
	}
	w.put(buf)
}

// --- Primitive Write Operations ---

func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
}

func (w *Writer) WriteUint8(v uint8) {
	_ = w.WriteByte(v)
}

func (w *Writer) WriteUint16(v uint16) {
	if w.err != nil {
		return
	}
	var buf [2]byte
	w.order.PutUint16(buf[:], v)
	w.put(buf[:])
}

func (w *Writer) WriteUint32(v uint32) {
	if w.err != nil {
		return
	}
	var buf [4]byte
	w.order.PutUint32(buf[:], v)
	w.put(buf[:])
}

func (w *Writer) WriteUint64(v uint64) {
	if w.err != nil {
		return
	}
	var buf [8]byte
	w.order.PutUint64(buf[:], v)
	w.put(buf[:])
}

func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}
