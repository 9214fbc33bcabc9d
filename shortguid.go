package shortguid

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// ShortGuid is a 128-bit UUID value whose canonical text rendering is the
// 22-character unpadded URL-safe base64 form.  It holds no state beyond the
// 16 bytes, so values are comparable with == and usable as map keys.
type ShortGuid uuid.UUID

// Nil is the empty ShortGuid, all 16 bytes zero.  It is a legitimate value,
// not an error state; it renders as "AAAAAAAAAAAAAAAAAAAAAA".
var Nil ShortGuid

// New returns a ShortGuid wrapping a fresh random (version 4) UUID.
func New() ShortGuid {
	return ShortGuid(uuid.New())
}

// FromUUID wraps an existing UUID.  Every UUID is valid, so this never fails.
func FromUUID(id uuid.UUID) ShortGuid {
	return ShortGuid(id)
}

// UUID returns the underlying UUID value.
func (s ShortGuid) UUID() uuid.UUID {
	return uuid.UUID(s)
}

// FromBytes constructs a ShortGuid from 16 bytes in the standard big-endian
// RFC 4122 field layout.  There is no invalid bit pattern, so this is total.
func FromBytes(b [16]byte) ShortGuid {
	return ShortGuid(b)
}

// FromBytesLE constructs a ShortGuid from 16 bytes in the little-endian
// field layout used by some runtime GUID representations.  The three leading
// multi-byte fields are byte-swapped back into the standard layout.
func FromBytesLE(b [16]byte) ShortGuid {
	return ShortGuid(swapFields(b))
}

// FromSlice constructs a ShortGuid from a variable-length byte sequence.
// It fails with ErrInvalidLength unless b is exactly 16 bytes.
func FromSlice(b []byte) (ShortGuid, error) {
	if len(b) != 16 {
		return Nil, fmt.Errorf("%w: expected 16 bytes, got %d", ErrInvalidLength, len(b))
	}
	var s ShortGuid
	copy(s[:], b)
	return s, nil
}

// Parse decodes any of the three accepted syntaxes into a ShortGuid:
//
//   - 22-character short form (unpadded URL-safe base64), optionally with
//     its two implicit padding characters re-added,
//   - 36-character dashed hexadecimal UUID (case-insensitive),
//   - 32-character undashed hexadecimal UUID (case-insensitive).
//
// Anything else fails with an error matching ErrInvalidLength,
// ErrInvalidEncoding or ErrDecodedLength.
func Parse(value string) (ShortGuid, error) {
	id, err := decode(value)
	if err != nil {
		return Nil, err
	}
	return ShortGuid(id), nil
}

// MustParse is like Parse but panics on error.  It simplifies initialising
// package-level identifiers from literals known to be valid.
func MustParse(value string) ShortGuid {
	s, err := Parse(value)
	if err != nil {
		panic(fmt.Sprintf("shortguid: Parse(%q): %v", value, err))
	}
	return s
}

// String returns the canonical 22-character short form.  The long dashed and
// undashed forms are never produced on output; use UUID().String() for the
// dashed rendering.
func (s ShortGuid) String() string {
	return encode(uuid.UUID(s))
}

// Bytes returns the 16 bytes in the standard big-endian RFC 4122 layout.
func (s ShortGuid) Bytes() [16]byte {
	return [16]byte(s)
}

// BytesLE returns the 16 bytes in the little-endian field layout: the 4-, 2-
// and 2-byte leading fields reversed, the trailing 8 bytes unchanged.  The
// swap is based on the UUID layout rather than the host architecture, so the
// bytes are flipped on both big- and little-endian machines.
func (s ShortGuid) BytesLE() [16]byte {
	return swapFields([16]byte(s))
}

// IsEmpty reports whether all 16 bytes are zero.
func (s ShortGuid) IsEmpty() bool {
	return s == Nil
}

// Equal reports whether two values hold the same 16 bytes.
func (s ShortGuid) Equal(other ShortGuid) bool {
	return s == other
}

// Compare orders two values by their raw 16 bytes, returning -1, 0 or 1.
// Note this is byte order, not text order: two values can compare
// differently from their String() renderings, because base64 characters do
// not sort in byte-value order.
func (s ShortGuid) Compare(other ShortGuid) int {
	return bytes.Compare(s[:], other[:])
}

// Equals reports byte equality against any supported right-hand side:
// another ShortGuid, a uuid.UUID, a string in any accepted syntax, a 16-byte
// array, or a byte slice.  Strings resolve through Parse, slices through a
// length check; there is no looser matching, and unsupported types or
// unparseable strings are simply not equal.
func (s ShortGuid) Equals(rhs interface{}) bool {
	switch v := rhs.(type) {
	case ShortGuid:
		return s == v
	case *ShortGuid:
		return v != nil && s == *v
	case uuid.UUID:
		return uuid.UUID(s) == v
	case string:
		other, err := Parse(v)
		return err == nil && s == other
	case [16]byte:
		return [16]byte(s) == v
	case []byte:
		return len(v) == 16 && bytes.Equal(s[:], v)
	default:
		return false
	}
}
