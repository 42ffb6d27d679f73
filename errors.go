package sol

import (
	"errors"
	"io"
)

var (
	// ErrUnsupportedFormat indicates the magic bytes are not 0x00 0xBF; the input is not a shared object at all.
	ErrUnsupportedFormat = errors.New("sol: unsupported format")

	// ErrMalformedHeader indicates a bad "TCSO" type marker or tail constant.
	ErrMalformedHeader = errors.New("sol: malformed header")

	// ErrUnknownVersion indicates the version block selects neither AMF0 nor AMF3.
	ErrUnknownVersion = errors.New("sol: unknown AMF version")

	// ErrNoBodyCodec indicates there is no value-list codec registered for a known version.
	ErrNoBodyCodec = errors.New("sol: no codec registered for AMF version")

	// ErrInvalidUTF8 indicates a key, root name or string value is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("sol: invalid UTF-8")

	// ErrUnexpectedType indicates an unrecognized value type tag, or a value
	// the encoder cannot represent.
	ErrUnexpectedType = errors.New("sol: unexpected type")

	// ErrUnexpectedEOF indicates the buffer ended in the middle of a field.
	ErrUnexpectedEOF = io.ErrUnexpectedEOF

	// ErrLengthMismatch indicates the value list did not end exactly where the
	// declared length says it does.
	ErrLengthMismatch = errors.New("sol: declared length does not match body")

	// ErrStringTooLong indicates a key or string exceeds the 16-bit length prefix.
	ErrStringTooLong = errors.New("sol: string exceeds 65535 bytes")

	// ErrTrailingData indicates non-zero bytes after the end of the document.
	ErrTrailingData = errors.New("sol: non-zero trailing data found after document")

	// ErrInvalidSeek indicates a seek was attempted to an invalid position.
	ErrInvalidSeek = errors.New("sol: seek to an invalid position")

	// ErrInvalidWhence indicates that an invalid 'whence' parameter was provided to a Seek operation.
	ErrInvalidWhence = errors.New("sol: unsupported whence")

	// ErrNilIO indicates ReadFrom/WriteTo was called with a nil io.Reader/io.Writer.
	ErrNilIO = errors.New("sol: nil io.Reader/io.Writer")
)
