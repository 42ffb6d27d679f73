// Package amf3 defines the value tree of the AMF3 encoding as it appears in
// version 3 shared objects.
//
// The AMF3 wire algorithm (29-bit variable-length integers, string, object
// and trait reference tables) is not implemented here. A codec that
// implements it produces and consumes these types and plugs into the
// container with Register:
//
//	amf3.Register(mycodec)
//	doc, err := sol.Decode(data) // version 3 bodies now decode
//
// Every type implements sol.Value and reports sol.AMF3 from Encoding.
package amf3

import (
	"fmt"
	"time"

	"github.com/oy3o/sol"
)

// AMF3 type markers.
const (
	MarkerUndefined    = 0x00
	MarkerNull         = 0x01
	MarkerFalse        = 0x02
	MarkerTrue         = 0x03
	MarkerInteger      = 0x04
	MarkerDouble       = 0x05
	MarkerString       = 0x06
	MarkerXMLDocument  = 0x07
	MarkerDate         = 0x08
	MarkerArray        = 0x09
	MarkerObject       = 0x0A
	MarkerXML          = 0x0B
	MarkerByteArray    = 0x0C
	MarkerVectorInt    = 0x0D
	MarkerVectorUint   = 0x0E
	MarkerVectorDouble = 0x0F
	MarkerVectorObject = 0x10
	MarkerDictionary   = 0x11
)

// Integer range of the 29-bit signed U29 encoding.
const (
	MaxInt = 1<<28 - 1
	MinInt = -1 << 28
)

type (
	Undefined   struct{}
	Null        struct{}
	Boolean     bool
	Integer     int32
	Double      float64
	String      string
	XMLDocument string
	XML         string
	ByteArray   []byte

	// Date is milliseconds since the Unix epoch, UTC.
	Date float64

	// Array holds associative entries (keyed) and dense entries (indexed).
	Array struct {
		Assoc []sol.Pair
		Dense []sol.Value
	}

	// Object is a typed or anonymous object. The first Sealed entries are the
	// trait's sealed members; the rest are dynamic members.
	Object struct {
		ClassName string
		Sealed    int
		Dynamic   bool
		Entries   []sol.Pair
	}

	VectorInt struct {
		Fixed bool
		Items []int32
	}

	VectorUint struct {
		Fixed bool
		Items []uint32
	}

	VectorDouble struct {
		Fixed bool
		Items []float64
	}

	VectorObject struct {
		Fixed     bool
		ClassName string
		Items     []sol.Value
	}

	Dictionary struct {
		WeakKeys bool
		Entries  []DictionaryEntry
	}

	DictionaryEntry struct {
		Key   sol.Value
		Value sol.Value
	}
)

func (Undefined) Encoding() sol.Version    { return sol.AMF3 }
func (Null) Encoding() sol.Version         { return sol.AMF3 }
func (Boolean) Encoding() sol.Version      { return sol.AMF3 }
func (Integer) Encoding() sol.Version      { return sol.AMF3 }
func (Double) Encoding() sol.Version       { return sol.AMF3 }
func (String) Encoding() sol.Version       { return sol.AMF3 }
func (XMLDocument) Encoding() sol.Version  { return sol.AMF3 }
func (XML) Encoding() sol.Version          { return sol.AMF3 }
func (ByteArray) Encoding() sol.Version    { return sol.AMF3 }
func (Date) Encoding() sol.Version         { return sol.AMF3 }
func (Array) Encoding() sol.Version        { return sol.AMF3 }
func (Object) Encoding() sol.Version       { return sol.AMF3 }
func (VectorInt) Encoding() sol.Version    { return sol.AMF3 }
func (VectorUint) Encoding() sol.Version   { return sol.AMF3 }
func (VectorDouble) Encoding() sol.Version { return sol.AMF3 }
func (VectorObject) Encoding() sol.Version { return sol.AMF3 }
func (Dictionary) Encoding() sol.Version   { return sol.AMF3 }

// Time converts d to a time.Time.
func (d Date) Time() time.Time {
	return time.UnixMilli(int64(d)).UTC()
}

// DateOf converts t to a Date with millisecond precision.
func DateOf(t time.Time) Date {
	return Date(t.UnixMilli())
}

// IntegerOf returns n as an Integer if it fits the 29-bit range.
func IntegerOf(n int64) (Integer, error) {
	if n < MinInt || n > MaxInt {
		return 0, fmt.Errorf("%w: %d is outside the 29-bit integer range", sol.ErrUnexpectedType, n)
	}
	return Integer(n), nil
}

// Register installs c as the codec for version 3 documents.
func Register(c sol.BodyCodec) error {
	return sol.RegisterBodyCodec(sol.AMF3, c)
}
