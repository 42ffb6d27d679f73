package sol

import "fmt"

// Version is the value encoding selected by the last byte of the version block.
type Version uint8

const (
	AMF0 = Version(0)
	AMF3 = Version(3)
)

// Known reports whether v is one of the two encodings the format defines.
func (v Version) Known() bool { return v == AMF0 || v == AMF3 }

func (v Version) String() string {
	switch v {
	case AMF0:
		return "AMF0"
	case AMF3:
		return "AMF3"
	}
	return fmt.Sprintf("Version(%d)", uint8(v))
}

// Value is one stored datum. AMF0 values are defined here; the AMF3 tree
// lives in package amf3 and reports AMF3 from Encoding.
type Value interface {
	Encoding() Version
}

// Pair is a key/value entry. Order is wire-significant and keys are not
// required to be unique.
type Pair struct {
	Key   string
	Value Value
	// Trailer is the padding byte that follows each top-level record. It is
	// kept so files with non-zero padding round-trip unchanged. Members of
	// nested objects have no such byte and ignore this field.
	Trailer byte
}

// AMF0 type markers.
const (
	MarkerNumber    = 0x00
	MarkerBoolean   = 0x01
	MarkerString    = 0x02
	MarkerObject    = 0x03
	MarkerObjectEnd = 0x09
)

type (
	Number  float64
	Boolean bool
	String  string
	// Object is an anonymous AMF0 object; its members use the same Value type.
	Object []Pair
)

func (Number) Encoding() Version  { return AMF0 }
func (Boolean) Encoding() Version { return AMF0 }
func (String) Encoding() Version  { return AMF0 }
func (Object) Encoding() Version  { return AMF0 }
