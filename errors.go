package shortguid

import "errors"

// Parse and construction failures wrap one of the sentinel errors below so
// that callers can classify them with errors.Is without string matching.
var (
	// ErrInvalidLength reports an input whose size rules it out as a
	// candidate for any accepted syntax: a string that is not 22, 24, 32 or
	// 36 characters long, or a raw byte sequence that is not 16 bytes.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidEncoding reports an input of an accepted length whose
	// content does not satisfy the attempted syntax: a character outside
	// the hexadecimal or URL-safe base64 alphabet, a dash in the wrong
	// position, or misplaced padding.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrDecodedLength reports a syntactically valid base64 string that
	// decodes to a byte count other than 16.
	ErrDecodedLength = errors.New("decoded length mismatch")
)
