package shortguid

import (
	"errors"
	"testing"
)

// FuzzParse feeds arbitrary strings through the decoder.  Whatever comes in,
// Parse must either fail with one of the three declared error kinds or
// return a value whose canonical rendering parses back to the same bytes.
func FuzzParse(f *testing.F) {
	f.Add("yaZG05xhTLe_ze4lIsj2Mw")
	f.Add("yaZG05xhTLe_ze4lIsj2Mw==")
	f.Add("c9a646d3-9c61-4cb7-bfcd-ee2522c8f633")
	f.Add("c9a646d39c614cb7bfcdee2522c8f633")
	f.Add("AAAAAAAAAAAAAAAAAAAAAA")
	f.Add("")
	f.Add("Nothing to see here...")
	f.Add("yaZG05xhTLe+ze4lIsj2Mw")

	f.Fuzz(func(t *testing.T, input string) {
		value, err := Parse(input)
		if err != nil {
			if !errors.Is(err, ErrInvalidLength) &&
				!errors.Is(err, ErrInvalidEncoding) &&
				!errors.Is(err, ErrDecodedLength) {
				t.Fatalf("unclassified error for %q: %v", input, err)
			}
			if value != Nil {
				t.Fatalf("failed parse of %q left a partial value %v", input, value)
			}
			return
		}

		again, err := Parse(value.String())
		if err != nil {
			t.Fatalf("canonical form %q of %q does not re-parse: %v", value.String(), input, err)
		}
		if again != value {
			t.Fatalf("round trip mismatch for %q: %v != %v", input, again, value)
		}
	})
}

// FuzzFromSlice checks that arbitrary byte sequences either round-trip
// exactly (16 bytes) or are rejected with ErrInvalidLength.
func FuzzFromSlice(f *testing.F) {
	f.Add([]byte(nil))
	f.Add(make([]byte, 16))
	f.Add([]byte("0123456789abcdef"))
	f.Add([]byte("0123456789abcdef0"))

	f.Fuzz(func(t *testing.T, data []byte) {
		value, err := FromSlice(data)
		if len(data) != 16 {
			if !errors.Is(err, ErrInvalidLength) {
				t.Fatalf("expected ErrInvalidLength for %d bytes, got %v", len(data), err)
			}
			return
		}
		if err != nil {
			t.Fatalf("unexpected error for 16 bytes: %v", err)
		}
		decoded, err := Parse(value.String())
		if err != nil {
			t.Fatalf("encoding of %x does not decode: %v", data, err)
		}
		if !decoded.Equals(data) {
			t.Fatalf("round trip mismatch for %x", data)
		}
	})
}
