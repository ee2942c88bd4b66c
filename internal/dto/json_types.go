package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateTimeLayout is ISO-8601 without a zone offset. Timestamps are always
// interpreted as UTC on the wire.
const dateTimeLayout = "2006-01-02T15:04:05"

// DateTime is a time.Time that serializes without a zone offset.
type DateTime struct {
	time.Time
}

// NewDateTime wraps t for wire serialization.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(dateTimeLayout) + `"`), nil
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		// Tolerate offset-carrying input from older clients.
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
	}
	t.Time = parsed.UTC()
	return nil
}

// Money is a decimal that serializes as a plain JSON number with two-decimal
// presentation. Internal arithmetic keeps full precision; rounding happens
// only at serialization.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps d for wire serialization.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	// decimal accepts both quoted and unquoted numeric input.
	return m.Decimal.UnmarshalJSON(data)
}
