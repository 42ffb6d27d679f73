package sol

import (
	"encoding"
	"fmt"
	"io"

	"github.com/puzpuzpuz/xsync/v4"
)

// Marshaler defines the methods for encoding a document into a byte stream.
type Marshaler interface {
	// encoding.BinaryMarshaler provides the primary encoding method.
	// It allocates and returns a new byte slice.
	encoding.BinaryMarshaler // Method: MarshalBinary() ([]byte, error)
	// io.WriterTo writes the encoded document to a stream.
	io.WriterTo // Method: WriteTo(writer io.Writer) (int64, error)

	// MarshalTo encodes into a pre-allocated buffer, returning
	// io.ErrShortBuffer if the buffer is too small.
	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler defines the methods for decoding a byte stream into a document.
type Unmarshaler interface {
	// encoding.BinaryUnmarshaler decodes data from a byte slice.
	encoding.BinaryUnmarshaler // Method: UnmarshalBinary(data []byte) error
	// io.ReaderFrom reads the whole stream, then decodes it.
	io.ReaderFrom // Method: ReadFrom(r io.Reader) (int64, error)
}

// PairDecoder decodes the entries of one value-list body. A decoder is
// created per document, so it may keep state (reference tables) across pairs.
// The container owns the loop, the per-record padding byte and the length
// check; the decoder only reads keys and values from the shared Reader.
type PairDecoder interface {
	DecodeKey() (string, error)
	Decode() (Value, error)
}

// PairEncoder is the write-side counterpart of PairDecoder.
type PairEncoder interface {
	EncodeKey(key string) error
	Encode(v Value) error
}

// BodyCodec produces per-document decoders and encoders for one value encoding.
type BodyCodec interface {
	NewDecoder(r *Reader) PairDecoder
	NewEncoder(w *Writer) PairEncoder
}

// bodyCodecs maps a version byte to its codec. Lookups happen on every
// document read, registration rarely, so a concurrent map fits.
var bodyCodecs = xsync.NewMap[Version, BodyCodec]()

func init() {
	RegisterBodyCodec(AMF0, amf0Codec{})
}

// RegisterBodyCodec installs the codec used for documents of version v,
// replacing any previous one. Only AMF0 and AMF3 exist in the format.
func RegisterBodyCodec(v Version, c BodyCodec) error {
	if !v.Known() {
		return fmt.Errorf("%w: %d", ErrUnknownVersion, uint8(v))
	}
	if c == nil {
		bodyCodecs.Delete(v)
		return nil
	}
	bodyCodecs.Store(v, c)
	return nil
}

// LookupBodyCodec returns the codec registered for version v.
func LookupBodyCodec(v Version) (BodyCodec, error) {
	if !v.Known() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, uint8(v))
	}
	c, ok := bodyCodecs.Load(v)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoBodyCodec, v)
	}
	return c, nil
}
