package inlinable

import (
	"encoding/json"
	"unicode/utf8"
)

// MarshalText implements encoding.TextMarshaler. The wire form is the
// plain contents; the representation is not part of it.
func (s String) MarshalText() ([]byte, error) {
	return append([]byte(nil), s.Bytes()...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The representation
// of the result is chosen by length alone: contents that fit in Capacity
// bytes are stored inline.
func (s *String) UnmarshalText(b []byte) error {
	if !utf8.Valid(b) {
		return ErrInvalidUTF8
	}
	*s = FromString(string(b))
	return nil
}

// MarshalJSON implements json.Marshaler, encoding the contents as a JSON
// string.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler. Like UnmarshalText it picks
// the representation of the result purely by length.
func (s *String) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = FromString(str)
	return nil
}
