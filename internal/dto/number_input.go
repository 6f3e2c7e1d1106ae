package dto

import (
	"bytes"
	"encoding/json"
)

// NumberInput is a numeric request field that accepts a JSON number or a
// string ("12.5", "12,5", ""). The raw text is kept and coerced by the
// services, so malformed values never fail binding.
type NumberInput struct {
	Raw string
	Set bool
}

// NewNumberInput returns a set NumberInput holding raw.
func NewNumberInput(raw string) NumberInput {
	return NumberInput{Raw: raw, Set: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumberInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = NumberInput{}
		return nil
	}
	n.Set = true
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			n.Raw = ""
			return nil
		}
		n.Raw = s
		return nil
	}
	n.Raw = string(b)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n NumberInput) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return json.Marshal(n.Raw)
}
