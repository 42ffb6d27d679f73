package sol

import (
	"encoding/binary"
	"io"
	"math"
)

// Reader is a cursor over an in-memory byte slice that simplifies reading
// big-endian binary data. It tracks the first error; subsequent reads become
// no-ops, so a sequence of reads can be checked once with Err.
type Reader struct {
	b     []byte
	pos   int
	err   error // first error encountered.
	order binary.ByteOrder
}

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
	_ io.Seeker     = (*Reader)(nil)
)

// NewReader creates a Reader positioned at the start of b.
func NewReader(b []byte) *Reader {
	return &Reader{b: b, order: Order}
}

// WithByteOrder allows setting a custom byte order and returns
// the configured for chaining.
func (r *Reader) WithByteOrder(order binary.ByteOrder) *Reader {
	r.order = order
	return r
}

// Read implements the io.Reader interface.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.pos >= len(r.b) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, r.b[r.pos:])
	r.pos += n
	return n, nil
}

// ReadByte implements the io.ByteReader interface.
func (r *Reader) ReadByte() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.pos >= len(r.b) {
		r.err = ErrUnexpectedEOF
		return 0, r.err
	}
	b := r.b[r.pos]
	r.pos++
	return b, nil
}

// Seek implements the io.Seeker interface. Seeking past the end is allowed;
// the next read fails.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	if r.err != nil {
		return int64(r.pos), r.err
	}
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(r.pos) + offset
	case io.SeekEnd:
		abs = int64(len(r.b)) + offset
	default:
		return int64(r.pos), ErrInvalidWhence
	}
	if abs < 0 {
		return int64(r.pos), ErrInvalidSeek
	}
	r.pos = int(abs)
	return abs, nil
}

func (r *Reader) Pos() int   { return r.pos }
func (r *Reader) Len() int   { return len(r.b) }
func (r *Reader) Err() error { return r.err }

// Remaining returns the unread bytes without copying them.
func (r *Reader) Remaining() []byte {
	if r.pos >= len(r.b) {
		return nil
	}
	return r.b[r.pos:]
}

// Available returns the number of bytes left to read.
func (r *Reader) Available() int {
	if n := len(r.b) - r.pos; n > 0 {
		return n
	}
	return 0
}

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// next returns the following n bytes without copying them.
// Running out of data is always ErrUnexpectedEOF: every caller is in the middle of a field.
func (r *Reader) next(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n > r.Available() {
		r.setError(ErrUnexpectedEOF)
		return nil
	}
	buf := r.b[r.pos : r.pos+n]
	r.pos += n
	return buf
}

// ReadBytes reads n bytes and returns a new byte slice.
func (r *Reader) ReadBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	buf := r.next(n)
	if buf == nil {
		return nil
	}
	return append([]byte(nil), buf...)
}

// ReadBytesTo fills dest completely.
func (r *Reader) ReadBytesTo(dest []byte) {
	if len(dest) == 0 {
		return
	}
	if buf := r.next(len(dest)); buf != nil {
		copy(dest, buf)
	}
}

// ReadFixed decodes a fixed-size struct (no slices, maps or strings) in the
// reader's byte order.
func (r *Reader) ReadFixed(dest any) {
	size := binary.Size(dest)
	if size < 0 {
		r.setError(ErrUnexpectedType)
		return
	}
	buf := r.next(size)
	if buf == nil {
		return
	}
	if _, err := binary.Decode(buf, r.order, dest); err != nil {
		r.setError(err)
	}
}

// --- Primitive Read Operations ---

func (r *Reader) ReadBool(dest *bool) {
	if buf := r.next(1); buf != nil {
		*dest = buf[0] != 0
	}
}

func (r *Reader) ReadUint8(dest *uint8) {
	if buf := r.next(1); buf != nil {
		*dest = buf[0]
	}
}

func (r *Reader) ReadUint16(dest *uint16) {
	if buf := r.next(2); buf != nil {
		*dest = r.order.Uint16(buf)
	}
}

func (r *Reader) ReadUint32(dest *uint32) {
	if buf := r.next(4); buf != nil {
		*dest = r.order.Uint32(buf)
	}
}

func (r *Reader) ReadUint64(dest *uint64) {
	if buf := r.next(8); buf != nil {
		*dest = r.order.Uint64(buf)
	}
}

// ReadFloat64 reads an IEEE-754 double bit for bit; NaN payloads survive.
func (r *Reader) ReadFloat64(dest *float64) {
	if buf := r.next(8); buf != nil {
		*dest = math.Float64frombits(r.order.Uint64(buf))
	}
}
