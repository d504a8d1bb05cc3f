package valueobjects

import (
	"fmt"
	"strings"
)

const (
	// MinPhoneDigits is the minimum number of digits after normalization.
	MinPhoneDigits = 7
	// MaxPhoneDigits is the maximum number of digits after normalization.
	MaxPhoneDigits = 15
)

// Phone represents an optional contact phone number. Separators and country
// code punctuation are stripped; only the digits are stored, so "300-123-4567"
// normalizes to "3001234567".
type Phone struct {
	value string
}

// NewPhone creates a new Phone value object, stripping all non-digit
// characters before validating length. Absence is not an error: callers
// treat an empty raw value as "no phone" and never construct the object.
func NewPhone(value string) (*Phone, error) {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	normalized := digits.String()
	if len(normalized) < MinPhoneDigits || len(normalized) > MaxPhoneDigits {
		return nil, fmt.Errorf("phone number must have between %d and %d digits, got %d",
			MinPhoneDigits, MaxPhoneDigits, len(normalized))
	}

	return &Phone{value: normalized}, nil
}

// String returns the normalized digits.
func (p *Phone) String() string {
	return p.value
}

// Equals checks if two phone numbers are equal.
func (p *Phone) Equals(other *Phone) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.value == other.value
}
