package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Number represents a monetary value exchanged with CEX.IO. The exchange
// generally transmits amounts as decimal strings but some fields arrive as
// bare JSON numbers; Number accepts both and carries the value as an exact
// decimal so no precision is lost in transit. It always re-renders as a
// string.
type Number struct {
	decimal.Decimal
}

// NewNumber wraps a decimal value.
func NewNumber(d decimal.Decimal) Number {
	return Number{Decimal: d}
}

// NumberFromString parses a decimal string into a Number.
func NumberFromString(s string) (Number, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}, err
	}
	return Number{Decimal: d}, nil
}

// UnmarshalJSON deserializes a quoted decimal string or a bare JSON number.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(data)
	switch s {
	case "null", `""`:
		*n = Number{}
		return nil
	}

	if len(s) > 1 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %s into Number: %w", string(data), err)
	}
	n.Decimal = d
	return nil
}

// MarshalJSON serializes the value as a decimal string.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.Decimal.String() + `"`), nil
}

// IsZero reports whether the value is unset or exactly zero.
func (n Number) IsZero() bool {
	return n.Decimal.IsZero()
}
