package vehicle

import (
	"caseta/internal/shared/errors"
)

// NewPlateFormatError reports an invalid plate input.
func NewPlateFormatError(details string) *errors.AppError {
	return errors.NewFieldValidationError("plate", "invalid plate format, expected ABC123 or ABC12D", details)
}

// NewYearRangeError reports a model year outside the accepted range.
func NewYearRangeError(details string) *errors.AppError {
	return errors.NewFieldValidationError("year", "year out of range", details)
}

// NewVehicleNotFoundError reports a missing vehicle lookup by plate or ID.
func NewVehicleNotFoundError(details string) *errors.AppError {
	return errors.NewNotFoundError("vehicle not found", details)
}

// NewDuplicatePlateError reports a plate already registered. The unique
// index keeps plates reserved even for deactivated vehicles.
func NewDuplicatePlateError(plate string) *errors.AppError {
	return errors.NewConflictError("a vehicle with this plate is already registered", plate)
}

// NewMissingRequiredFieldsError reports a submission missing plate or owner,
// independent of the per-field checks.
func NewMissingRequiredFieldsError(details string) *errors.AppError {
	return errors.NewValidationError("plate and owner are required", details)
}
