package sol

import (
	"fmt"
	"io"
)

// Document is one decoded shared object.
//
// A Document is not safe for concurrent use; callers serialize access.
type Document struct {
	// Length is the length field as found in the header. It is ignored when
	// writing and replaced with the recomputed value after a successful write.
	Length uint32
	// Framing selects what Length counts.
	Framing  Framing
	RootName string
	Version  Version
	Pairs    []Pair
}

// Statically assert that Document implements Marshaler and Unmarshaler.
var (
	_ Marshaler   = (*Document)(nil)
	_ Unmarshaler = (*Document)(nil)
)

// New returns an empty AMF0 document named root.
func New(root string) *Document {
	return &Document{RootName: root, Version: AMF0}
}

// Get returns the value of the first top-level pair named key.
func (d *Document) Get(key string) (Value, bool) {
	for _, p := range d.Pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of the first top-level pair named key, keeping its
// position, or appends a new pair.
func (d *Document) Set(key string, v Value) {
	for i := range d.Pairs {
		if d.Pairs[i].Key == key {
			d.Pairs[i].Value = v
			return
		}
	}
	d.Pairs = append(d.Pairs, Pair{Key: key, Value: v})
}

// Validate reports problems that would make an encode fail, before any byte
// is written: oversized strings, unknown versions, and values an AMF0 body
// cannot hold. AMF3 values are left to their own encoder.
func (d *Document) Validate() error {
	if !fitsUint16(len(d.RootName)) {
		return fmt.Errorf("%w: root name is %d bytes", ErrStringTooLong, len(d.RootName))
	}
	if !d.Version.Known() {
		return fmt.Errorf("%w: %d", ErrUnknownVersion, uint8(d.Version))
	}
	if d.Version != AMF0 {
		return nil
	}
	return validatePairs(d.Pairs, "")
}

func validatePairs(pairs []Pair, parent string) error {
	for _, p := range pairs {
		path := p.Key
		if parent != "" {
			path = parent + "." + p.Key
		}
		if !fitsUint16(len(p.Key)) {
			return fmt.Errorf("%w: key of %q is %d bytes", ErrStringTooLong, parent, len(p.Key))
		}
		switch v := p.Value.(type) {
		case Number, Boolean:
		case String:
			if !fitsUint16(len(v)) {
				return fmt.Errorf("%w: value of %q is %d bytes", ErrStringTooLong, path, len(v))
			}
		case Object:
			if err := validatePairs(v, path); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %T at %q cannot be encoded as AMF0", ErrUnexpectedType, v, path)
		}
	}
	return nil
}

// Encode returns the wire form of d.
func Encode(d *Document) ([]byte, error) {
	return d.MarshalBinary()
}

// MarshalBinary implements the standard `encoding.BinaryMarshaler` interface.
func (d *Document) MarshalBinary() ([]byte, error) {
	w := NewWriter(nil)
	if err := d.encode(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// MarshalTo encodes d into p and returns the number of bytes used.
// d is left untouched on error, io.ErrShortBuffer included.
func (d *Document) MarshalTo(p []byte) (int, error) {
	w := getWriter()
	defer putWriter(w)
	length := d.Length
	if err := d.encode(w); err != nil {
		return 0, err
	}
	if len(p) < w.Len() {
		d.Length = length
		return 0, io.ErrShortBuffer
	}
	return copy(p, w.Bytes()), nil
}

// WriteTo implements io.WriterTo. The document is fully encoded before the
// first byte reaches dst, so an encode error never leaves a partial write.
func (d *Document) WriteTo(dst io.Writer) (int64, error) {
	if dst == nil {
		return 0, ErrNilIO
	}
	w := getWriter()
	defer putWriter(w)
	if err := d.encode(w); err != nil {
		return 0, err
	}
	return w.WriteTo(dst)
}

// UnmarshalBinary implements the standard `encoding.BinaryUnmarshaler` interface.
// d is left untouched on error.
func (d *Document) UnmarshalBinary(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*d = *decoded
	return nil
}

// ReadFrom implements io.ReaderFrom.
// WARNING: This is NOT a streaming implementation. It reads the entire
// io.Reader into memory before decoding.
func (d *Document) ReadFrom(r io.Reader) (int64, error) {
	if r == nil {
		return 0, ErrNilIO
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}
	return int64(len(data)), d.UnmarshalBinary(data)
}
