package comic

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexInt is an integer that unmarshals from either a JSON number or a
// numeric JSON string ("1986"). Unmarshaling never fails: a value that
// cannot be parsed leaves Set false and keeps the original token in Raw,
// so callers can treat it as absent or echo it back to the client.
type FlexInt struct {
	Val int
	Set bool

	// Raw holds the original token when parsing failed.
	Raw string
}

// Int returns a FlexInt holding the given value.
func Int(v int) FlexInt {
	return FlexInt{Val: v, Set: true}
}

// IsZero reports whether the value was absent entirely, enabling omitzero.
func (f FlexInt) IsZero() bool {
	return !f.Set && f.Raw == ""
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = FlexInt{}
		return nil
	}

	s := string(data)
	if s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			*f = FlexInt{Raw: string(data)}
			return nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		*f = FlexInt{Raw: s}
		return nil
	}
	*f = FlexInt{Val: n, Set: true}
	return nil
}

// MarshalJSON implements json.Marshaler. Parsed values round-trip as
// numbers; unparseable input is echoed back as a string.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	if f.Set {
		return []byte(strconv.Itoa(f.Val)), nil
	}
	return json.Marshal(f.Raw)
}

// String returns the value as text, or the raw token when unparsed.
func (f FlexInt) String() string {
	if f.Set {
		return strconv.Itoa(f.Val)
	}
	return f.Raw
}
