package dto

import (
	"bytes"
	"encoding/json"
)

// Amount is a money amount as sent by a client: either a JSON number or a
// numeric string. It keeps the raw text so validation can report bad input
// as a field error instead of a decoding failure.
type Amount string

// UnmarshalJSON accepts numbers, strings and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(data)
	return nil
}

// String returns the raw text.
func (a Amount) String() string {
	return string(a)
}
