package valueobjects

import (
	"fmt"
	"strings"
)

// DocumentType represents the kind of identity document an owner presents.
type DocumentType string

const (
	DocumentTypeCC       DocumentType = "CC"  // cedula de ciudadania
	DocumentTypeCE       DocumentType = "CE"  // cedula de extranjeria
	DocumentTypeTI       DocumentType = "TI"  // tarjeta de identidad
	DocumentTypeNIT      DocumentType = "NIT" // tax ID for legal persons
	DocumentTypePassport DocumentType = "PAS"
)

// ValidDocumentTypes contains all valid document type values.
var ValidDocumentTypes = map[DocumentType]bool{
	DocumentTypeCC:       true,
	DocumentTypeCE:       true,
	DocumentTypeTI:       true,
	DocumentTypeNIT:      true,
	DocumentTypePassport: true,
}

// ParseDocumentType parses a string into a DocumentType (case-insensitive).
func ParseDocumentType(value string) (DocumentType, error) {
	normalized := DocumentType(strings.ToUpper(strings.TrimSpace(value)))
	if normalized == "" {
		return "", fmt.Errorf("document type cannot be empty")
	}
	if !ValidDocumentTypes[normalized] {
		return "", fmt.Errorf("invalid document type: %s", value)
	}
	return normalized, nil
}

// String returns the string representation of the document type.
func (d DocumentType) String() string {
	return string(d)
}
