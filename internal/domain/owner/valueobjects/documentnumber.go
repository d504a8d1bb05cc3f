package valueobjects

import (
	"fmt"
	"strings"
)

// MinDocumentLength is the minimum number of digits in a document number.
const MinDocumentLength = 6

// DocumentNumber represents an identity document number value object.
// Only digits are accepted; formatting characters are rejected rather than
// stripped so that what the operator typed is what gets stored.
type DocumentNumber struct {
	value string
}

// NewDocumentNumber creates a new DocumentNumber value object with validation.
func NewDocumentNumber(value string) (*DocumentNumber, error) {
	normalized := strings.TrimSpace(value)

	if normalized == "" {
		return nil, fmt.Errorf("document number cannot be empty")
	}

	for _, r := range normalized {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("document number must contain only digits: %s", value)
		}
	}

	if len(normalized) < MinDocumentLength {
		return nil, fmt.Errorf("document number must be at least %d digits long", MinDocumentLength)
	}

	return &DocumentNumber{value: normalized}, nil
}

// String returns the string representation of the document number.
func (d *DocumentNumber) String() string {
	return d.value
}

// Equals checks if two document numbers are equal.
func (d *DocumentNumber) Equals(other *DocumentNumber) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.value == other.value
}
