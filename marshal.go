package shortguid

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Serialization adapters.  Structured formats carry the canonical short form
// so persisted records stay human-readable and URL-safe; only the binary
// interfaces expose the raw 16 bytes.  All unmarshalers accept the same
// three syntaxes as Parse.

// MarshalText implements encoding.TextMarshaler with the short form.
func (s ShortGuid) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (s *ShortGuid) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the raw 16 bytes in
// the big-endian field layout.
func (s ShortGuid) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), s[:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.  It fails with
// ErrInvalidLength unless data is exactly 16 bytes.
func (s *ShortGuid) UnmarshalBinary(data []byte) error {
	parsed, err := FromSlice(data)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON implements json.Marshaler with the short form as a JSON
// string.
func (s ShortGuid) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler.  The value must be a JSON
// string in one of the accepted syntaxes.
func (s *ShortGuid) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(text))
}

// MarshalYAML implements yaml.Marshaler with the short form as a scalar.
func (s ShortGuid) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for gopkg.in/yaml.v3 nodes.
func (s *ShortGuid) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return fmt.Errorf("shortguid: expected a scalar string node: %w", err)
	}
	return s.UnmarshalText([]byte(text))
}
