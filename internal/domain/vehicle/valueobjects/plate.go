package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MinPlateLength and MaxPlateLength bound the loose length fallback.
	MinPlateLength = 5
	MaxPlateLength = 7
)

// plateRegex matches Colombian-style plates: three letters followed by two
// digits and one alphanumeric (cars, e.g. ABC12D) or three letters followed
// by three digits (e.g. ABC123).
var plateRegex = regexp.MustCompile(`^[A-Z]{3}\d{2}[A-Z0-9]$|^[A-Z]{3}\d{3}$`)

// Plate represents a vehicle plate value object. Input is uppercased and
// trimmed before validation. A plate that misses the standard pattern is
// still accepted when its length falls in [5,7]; diplomatic, trailer and
// antique plates do not follow the standard layout.
type Plate struct {
	value string
}

// NewPlate creates a new Plate value object with validation.
func NewPlate(value string) (*Plate, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))

	if normalized == "" {
		return nil, fmt.Errorf("plate cannot be empty")
	}

	if !plateRegex.MatchString(normalized) {
		if len(normalized) < MinPlateLength || len(normalized) > MaxPlateLength {
			return nil, fmt.Errorf("invalid plate format, expected ABC123 or ABC12D: %s", value)
		}
	}

	return &Plate{value: normalized}, nil
}

// String returns the normalized plate.
func (p *Plate) String() string {
	return p.value
}

// Equals checks if two plates are equal.
func (p *Plate) Equals(other *Plate) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.value == other.value
}
