package shortguid

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Accepted input sizes.  The three syntaxes have disjoint lengths, so a
// plain length dispatch classifies every candidate unambiguously.
const (
	shortLen     = 22 // unpadded URL-safe base64
	paddedLen    = 24 // short form with the two implicit padding characters
	undashedLen  = 32 // hexadecimal without separators
	canonicalLen = 36 // dashed hexadecimal, 8-4-4-4-12 groups
)

// codec is the URL-safe base64 alphabet ('-' and '_' in place of '+' and
// '/') without padding.  Strict mode rejects inputs whose trailing bits are
// non-zero, so every valid short string has exactly one 16-byte value and
// re-encoding it reproduces the input verbatim.
var codec = base64.RawURLEncoding.Strict()

// encode renders 16 bytes as the canonical 22-character short form.  It is
// total over all inputs and never fails.
func encode(id uuid.UUID) string {
	return codec.EncodeToString(id[:])
}

// decode classifies value by length and decodes it through the matching
// syntax.  Dashed and undashed hexadecimal parsing is delegated to the uuid
// package; the short form is decoded here.
func decode(value string) (uuid.UUID, error) {
	switch len(value) {
	case canonicalLen, undashedLen:
		id, err := uuid.Parse(value)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
		return id, nil
	case paddedLen:
		if !strings.HasSuffix(value, "==") {
			return uuid.Nil, fmt.Errorf("%w: %d-character short form must end with \"==\"", ErrInvalidEncoding, paddedLen)
		}
		return decodeShort(value[:shortLen])
	case shortLen:
		return decodeShort(value)
	default:
		return uuid.Nil, fmt.Errorf("%w: expected %d, %d, %d or %d characters, got %d",
			ErrInvalidLength, shortLen, paddedLen, undashedLen, canonicalLen, len(value))
	}
}

func decodeShort(value string) (uuid.UUID, error) {
	raw, err := codec.DecodeString(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(raw) != 16 {
		return uuid.Nil, fmt.Errorf("%w: expected 16 bytes, got %d", ErrDecodedLength, len(raw))
	}
	var id uuid.UUID
	copy(id[:], raw)
	return id, nil
}

// leTranspose maps the RFC 4122 big-endian byte layout to the little-endian
// field layout: the 4-, 2- and 2-byte leading fields are reversed, the
// trailing 8 bytes stay in place.  The table is its own inverse, so applying
// the swap twice returns the original bytes.
var leTranspose = [16]int{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}

func swapFields(b [16]byte) (o [16]byte) {
	for dest, from := range leTranspose {
		o[dest] = b[from]
	}
	return o
}
