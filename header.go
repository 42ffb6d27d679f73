package sol

import (
	"fmt"
	"io"
)

// Fixed header constants.
var (
	Magic      = [2]byte{0x00, 0xBF}
	TypeMarker = [4]byte{'T', 'C', 'S', 'O'}
	Tail       = [6]byte{0x00, 0x04, 0x00, 0x00, 0x00, 0x00}
)

const (
	// HeaderSize is the size of the fixed part before the root name.
	HeaderSize = 16
	// lengthBase is the offset a FileLength framed length counts from: the
	// first byte after the length field itself.
	lengthBase = 6
)

// header is the fixed-size prefix of every document.
// It MUST stay free of variable-size fields so encoding/binary can size it.
type header struct {
	Magic  [2]byte
	Length uint32
	Type   [4]byte
	Tail   [6]byte
}

// readHeader checks the magic first, so input that is not this format at all
// is reported as such even when it is also too short for a full header.
func readHeader(r *Reader) (header, error) {
	var h header
	start := r.Pos()
	r.ReadBytesTo(h.Magic[:])
	if err := r.Err(); err != nil {
		return h, fmt.Errorf("sol: reading magic: %w", err)
	}
	if h.Magic != Magic {
		return h, fmt.Errorf("%w: magic % X", ErrUnsupportedFormat, h.Magic[:])
	}
	if _, err := r.Seek(int64(start), io.SeekStart); err != nil {
		return h, err
	}
	r.ReadFixed(&h)
	if err := r.Err(); err != nil {
		return h, fmt.Errorf("sol: reading header: %w", err)
	}
	if h.Type != TypeMarker {
		return h, fmt.Errorf("%w: type marker %q", ErrMalformedHeader, h.Type[:])
	}
	if h.Tail != Tail {
		return h, fmt.Errorf("%w: tail % X", ErrMalformedHeader, h.Tail[:])
	}
	return h, nil
}

// writeHeader emits the fixed header with a zero length placeholder and
// returns the placeholder's offset for PatchUint32.
func writeHeader(w *Writer) int {
	w.WriteBytes(Magic[:])
	lengthAt := w.Reserve(4)
	w.WriteBytes(TypeMarker[:])
	w.WriteBytes(Tail[:])
	return lengthAt
}
