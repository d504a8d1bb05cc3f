package owner

import (
	"caseta/internal/shared/errors"
)

// NewDocumentFormatError reports an invalid document number input.
func NewDocumentFormatError(details string) *errors.AppError {
	return errors.NewFieldValidationError("document_number", "invalid document number", details)
}

// NewPhoneFormatError reports an invalid phone number input.
func NewPhoneFormatError(details string) *errors.AppError {
	return errors.NewFieldValidationError("phone", "invalid phone number", details)
}

// NewOwnerNotFoundError reports a missing or inactive owner reference.
func NewOwnerNotFoundError(details string) *errors.AppError {
	return errors.NewNotFoundError("owner not found", details)
}

// NewDuplicateDocumentError reports a document number already registered to
// an active owner.
func NewDuplicateDocumentError(documentNumber string) *errors.AppError {
	return errors.NewConflictError("an active owner with this document number already exists", documentNumber)
}
