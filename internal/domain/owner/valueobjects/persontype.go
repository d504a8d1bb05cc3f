package valueobjects

import (
	"fmt"
	"strings"
)

// PersonType distinguishes natural persons from legal entities.
type PersonType string

const (
	PersonTypeNatural PersonType = "natural"
	PersonTypeLegal   PersonType = "legal"
)

// ParsePersonType parses a string into a PersonType (case-insensitive).
// Empty input defaults to natural.
func ParsePersonType(value string) (PersonType, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch PersonType(normalized) {
	case PersonTypeNatural, "":
		return PersonTypeNatural, nil
	case PersonTypeLegal:
		return PersonTypeLegal, nil
	default:
		return "", fmt.Errorf("invalid person type: %s", value)
	}
}

// String returns the string representation of the person type.
func (p PersonType) String() string {
	return string(p)
}

// IsLegal reports whether the owner is a legal entity.
func (p PersonType) IsLegal() bool {
	return p == PersonTypeLegal
}
