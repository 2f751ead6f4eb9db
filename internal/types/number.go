package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric field from an NWS document that may be null, quoted,
// wrapped in a {"value": ...} object, or not a number at all. Decoding never
// fails; Valid is false when no finite number could be read.
type Number struct {
	Value float64
	Valid bool
}

// NewNumber returns a valid Number
func NewNumber(v float64) Number {
	return Number{Value: v, Valid: true}
}

// Float returns the value and whether it is present
func (n Number) Float() (float64, bool) {
	return n.Value, n.Valid
}

// Ptr returns nil for an invalid Number
func (n Number) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '{':
		var wrapped struct {
			Value Number `json:"value"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil
		}
		*n = wrapped.Value
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		n.set(leadingFloat(s))
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return nil
	}
	n.set(v, true)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

func (n *Number) set(v float64, ok bool) {
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	n.Value = v
	n.Valid = true
}

// leadingFloat parses the longest numeric prefix of s, so "12 mph" reads as 12.
func leadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' || ((c == '-' || c == '+') && end == 0) ||
			((c == 'e' || c == 'E') && end > 0) {
			end++
			continue
		}
		break
	}
	for end > 0 {
		if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return v, true
		}
		end--
	}
	return 0, false
}
