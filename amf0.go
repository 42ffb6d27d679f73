package sol

import (
	"fmt"
	"unicode/utf8"
)

// amf0Codec is the built-in value-list codec for version 0 documents.
type amf0Codec struct{}

func (amf0Codec) NewDecoder(r *Reader) PairDecoder { return &amf0Decoder{r: r} }
func (amf0Codec) NewEncoder(w *Writer) PairEncoder { return &amf0Encoder{w: w} }

type amf0Decoder struct {
	r *Reader
}

func (d *amf0Decoder) DecodeKey() (string, error) {
	return readString16(d.r, "key")
}

func (d *amf0Decoder) Decode() (Value, error) {
	var marker uint8
	d.r.ReadUint8(&marker)
	if err := d.r.Err(); err != nil {
		return nil, err
	}
	return d.decodeValue(marker)
}

func (d *amf0Decoder) decodeValue(marker uint8) (Value, error) {
	switch marker {
	case MarkerNumber:
		var f float64
		d.r.ReadFloat64(&f)
		return Number(f), d.r.Err()
	case MarkerBoolean:
		var b bool
		d.r.ReadBool(&b)
		return Boolean(b), d.r.Err()
	case MarkerString:
		s, err := readString16(d.r, "string value")
		return String(s), err
	case MarkerObject:
		return d.decodeObject()
	}
	return nil, fmt.Errorf("%w: 0x%02x at offset %d", ErrUnexpectedType, marker, d.r.Pos()-1)
}

// decodeObject reads members until the object-end marker shows up in the
// slot where the next member's type marker would be. The marker is consumed
// and never becomes a member.
func (d *amf0Decoder) decodeObject() (Object, error) {
	obj := Object{}
	for {
		key, err := d.DecodeKey()
		if err != nil {
			return nil, err
		}
		var marker uint8
		d.r.ReadUint8(&marker)
		if err := d.r.Err(); err != nil {
			return nil, err
		}
		if marker == MarkerObjectEnd {
			return obj, nil
		}
		v, err := d.decodeValue(marker)
		if err != nil {
			return nil, err
		}
		obj = append(obj, Pair{Key: key, Value: v})
	}
}

type amf0Encoder struct {
	w *Writer
}

func (e *amf0Encoder) EncodeKey(key string) error {
	return writeString16(e.w, key, "key")
}

func (e *amf0Encoder) Encode(v Value) error {
	switch v := v.(type) {
	case Number:
		e.w.WriteUint8(MarkerNumber)
		e.w.WriteFloat64(float64(v))
	case Boolean:
		e.w.WriteUint8(MarkerBoolean)
		e.w.WriteBool(bool(v))
	case String:
		e.w.WriteUint8(MarkerString)
		return writeString16(e.w, string(v), "string value")
	case Object:
		e.w.WriteUint8(MarkerObject)
		for _, p := range v {
			if err := e.EncodeKey(p.Key); err != nil {
				return err
			}
			if err := e.Encode(p.Value); err != nil {
				return err
			}
		}
		// Empty key, then the end marker in the type slot.
		e.w.WriteUint16(0)
		e.w.WriteUint8(MarkerObjectEnd)
	default:
		return fmt.Errorf("%w: %T cannot be encoded as AMF0", ErrUnexpectedType, v)
	}
	return e.w.Err()
}

// readString16 reads a 16-bit length prefixed UTF-8 string.
func readString16(r *Reader, field string) (string, error) {
	var n uint16
	r.ReadUint16(&n)
	off := r.Pos()
	buf := r.next(int(n))
	if err := r.Err(); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w: %s at offset %d", ErrInvalidUTF8, field, off)
	}
	return string(buf), nil
}

// writeString16 writes a 16-bit length prefixed string.
func writeString16(w *Writer, s, field string) error {
	if !fitsUint16(len(s)) {
		return fmt.Errorf("%w: %s is %d bytes", ErrStringTooLong, field, len(s))
	}
	w.WriteUint16(uint16(len(s)))
	_, _ = w.WriteString(s)
	return w.Err()
}
