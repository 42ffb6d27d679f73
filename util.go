package sol

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Order is the byte order of every multi-byte field in the format.
var Order = binary.BigEndian

// MaxStringLen is the largest key, root name or AMF0 string the 16-bit
// length prefix can describe.
const MaxStringLen = math.MaxUint16

// MAX_TRAILING bounds how many bytes after the document end are inspected.
// Anything larger is considered garbage rather than padding.
const MAX_TRAILING = 1024

// fitsUint16 reports whether n can be stored in a 16-bit length prefix.
func fitsUint16[T constraints.Integer](n T) bool {
	return n >= 0 && uint64(n) <= MaxStringLen
}

// CheckTrailingZeros verifies that data left after the document is zero padding.
func CheckTrailingZeros(trailing []byte) error {
	if len(trailing) > MAX_TRAILING {
		return fmt.Errorf("%w: %d bytes exceed maximum of %d", ErrTrailingData, len(trailing), MAX_TRAILING)
	}
	for i, b := range trailing {
		if b != 0 {
			return fmt.Errorf("%w: found non-zero byte 0x%02x at offset %d", ErrTrailingData, b, i)
		}
	}
	return nil
}
