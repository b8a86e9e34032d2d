package httputil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PresenceFlag is a boolean that also accepts HTML checkbox semantics:
// a form posts "on" when the box is ticked and omits the field otherwise.
type PresenceFlag bool

// UnmarshalJSON accepts true/false, null, and the strings "on", "true", "1".
func (f *PresenceFlag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null", "false":
		*f = false
		return nil
	case "true":
		*f = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flag must be a boolean or string: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}

// OptionalInt is an integer field that may be absent. Forms send numbers
// as strings, so numeric strings are accepted; an empty string or null
// counts as absent.
type OptionalInt struct {
	Value *int
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			o.Value = nil
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%q is not an integer", s)
		}
		o.Value = &n
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("not an integer: %w", err)
	}
	o.Value = &n
	return nil
}
