package sol

import (
	"fmt"
	"math"
)

// Framing says what the header's length field counts.
type Framing uint8

const (
	// BodyLength counts the bytes of the value-list body only.
	BodyLength Framing = iota
	// FileLength counts every byte after the length field, as Flash Player
	// writes it: the file size minus 6.
	FileLength
)

func (f Framing) String() string {
	if f == FileLength {
		return "file-length"
	}
	return "body-length"
}

// Decode parses a complete document. There is no partial result: any
// header or structural error aborts the whole read.
func Decode(data []byte) (*Document, error) {
	r := NewReader(data)
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	root, err := readString16(r, "root name")
	if err != nil {
		return nil, fmt.Errorf("sol: reading root name: %w", err)
	}
	var block [4]byte
	r.ReadBytesTo(block[:])
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("sol: reading version block: %w", err)
	}
	version := Version(block[3])
	codec, err := LookupBodyCodec(version)
	if err != nil {
		return nil, err
	}

	framing, end := framingOf(h.Length, r.Pos(), len(data))
	pairs, err := readBody(r, codec.NewDecoder(r), end)
	if err != nil {
		return nil, err
	}
	if err := CheckTrailingZeros(r.Remaining()); err != nil {
		// Records past a short declared length would otherwise pass for
		// trailing data. FileLength framing never leaves any bytes over.
		return nil, fmt.Errorf("%w: declared end is offset %d: %w", ErrLengthMismatch, r.Pos(), err)
	}
	return &Document{
		Length:   h.Length,
		Framing:  framing,
		RootName: root,
		Version:  version,
		Pairs:    pairs,
	}, nil
}

// framingOf picks the framing whose end offset matches the input size,
// falling back to BodyLength.
func framingOf(length uint32, bodyStart, size int) (Framing, int64) {
	if lengthBase+int64(length) == int64(size) {
		return FileLength, int64(size)
	}
	return BodyLength, int64(bodyStart) + int64(length)
}

// readBody decodes pairs until the cursor reaches end. Each record is
// followed by one padding byte that belongs to the container, not the value.
func readBody(r *Reader, dec PairDecoder, end int64) ([]Pair, error) {
	var pairs []Pair
	for int64(r.Pos()) < end {
		off := r.Pos()
		key, err := dec.DecodeKey()
		if err != nil {
			return nil, fmt.Errorf("sol: pair %d at offset %d: key: %w", len(pairs), off, err)
		}
		v, err := dec.Decode()
		if err != nil {
			return nil, fmt.Errorf("sol: pair %d (%q) at offset %d: %w", len(pairs), key, off, err)
		}
		var trailer uint8
		r.ReadUint8(&trailer)
		if err := r.Err(); err != nil {
			return nil, fmt.Errorf("sol: pair %d (%q) at offset %d: padding: %w", len(pairs), key, off, err)
		}
		pairs = append(pairs, Pair{Key: key, Value: v, Trailer: trailer})
	}
	if pos := int64(r.Pos()); pos != end {
		return nil, fmt.Errorf("%w: body ends at offset %d, declared end is %d", ErrLengthMismatch, pos, end)
	}
	return pairs, nil
}

// encode writes d in two passes: the header goes out with a zero length,
// the body follows, and the real length is patched in once it is known.
// The Length field of d is ignored on input and updated on success.
func (d *Document) encode(w *Writer) error {
	if err := d.Validate(); err != nil {
		return err
	}
	codec, err := LookupBodyCodec(d.Version)
	if err != nil {
		return err
	}

	start := w.Pos()
	lengthAt := writeHeader(w)
	if err := writeString16(w, d.RootName, "root name"); err != nil {
		return err
	}
	w.WriteBytes([]byte{0x00, 0x00, 0x00, byte(d.Version)})

	n, err := writeBody(w, codec.NewEncoder(w), d.Pairs)
	if err != nil {
		return err
	}

	length := int64(n)
	if d.Framing == FileLength {
		length = int64(w.Pos()-start) - lengthBase
	}
	if length > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes do not fit the 32-bit length field", ErrLengthMismatch, length)
	}
	w.PatchUint32(lengthAt, uint32(length))
	if err := w.Err(); err != nil {
		return err
	}
	d.Length = uint32(length)
	return nil
}

// writeBody mirrors readBody and returns the number of body bytes written.
func writeBody(w *Writer, enc PairEncoder, pairs []Pair) (int, error) {
	start := w.Pos()
	for i, p := range pairs {
		if err := enc.EncodeKey(p.Key); err != nil {
			return 0, fmt.Errorf("sol: pair %d (%q): key: %w", i, p.Key, err)
		}
		if err := enc.Encode(p.Value); err != nil {
			return 0, fmt.Errorf("sol: pair %d (%q): %w", i, p.Key, err)
		}
		w.WriteUint8(p.Trailer)
	}
	return w.Pos() - start, w.Err()
}
