package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Time represents a unix timestamp that CEX.IO returns either as a quoted
// string or a bare number, in seconds or milliseconds. MarshalJSON
// serializes the time using RFC 3339 format.
type Time time.Time

// UnmarshalJSON deserializes json timestamp information.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)

	switch s {
	case "null", "0", `""`, `"0"`:
		*t = Time(time.Time{})
		return nil
	}

	if s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	// Fractional seconds are dropped; the exchange only resolves to
	// milliseconds.
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = s[:i]
	}

	standard, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %s into Time: %w", string(data), err)
	}

	switch {
	case len(s) <= 10:
		*t = Time(time.Unix(standard, 0))
	case len(s) <= 13:
		*t = Time(time.UnixMilli(standard))
	default:
		return fmt.Errorf("cannot unmarshal %s into Time", string(data))
	}
	return nil
}

// Time returns the underlying time instance.
func (t Time) Time() time.Time { return time.Time(t) }

// String returns a string representation of the time.
func (t Time) String() string {
	return t.Time().String()
}

// MarshalJSON serializes the time to json.
func (t Time) MarshalJSON() ([]byte, error) {
	return t.Time().MarshalJSON()
}
