package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FullName represents an owner's full name value object.
type FullName struct {
	value string
}

// NewFullName creates a new FullName value object with validation.
func NewFullName(value string) (*FullName, error) {
	normalized := strings.TrimSpace(value)

	if normalized == "" {
		return nil, fmt.Errorf("full name cannot be empty")
	}

	if len(normalized) < 2 {
		return nil, fmt.Errorf("full name must be at least 2 characters long")
	}

	if len(normalized) > 150 {
		return nil, fmt.Errorf("full name cannot exceed 150 characters")
	}

	if strings.Contains(normalized, "  ") {
		return nil, fmt.Errorf("full name cannot contain consecutive spaces")
	}

	return &FullName{value: normalized}, nil
}

// String returns the string representation of the name.
func (n *FullName) String() string {
	return n.value
}

// DisplayName returns the name with each part title-cased for listings.
func (n *FullName) DisplayName() string {
	caser := cases.Title(language.Spanish)
	parts := strings.Fields(n.value)
	formatted := make([]string, 0, len(parts))
	for _, part := range parts {
		formatted = append(formatted, caser.String(strings.ToLower(part)))
	}
	return strings.Join(formatted, " ")
}

// Equals checks if two names are equal, ignoring case.
func (n *FullName) Equals(other *FullName) bool {
	if n == nil || other == nil {
		return n == other
	}
	return strings.EqualFold(n.value, other.value)
}
