package utils

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"caseta/internal/shared/errors"
)

// BindingError converts a gin binding error into an AppError. Validator
// failures become field-scoped validation errors using JSON tag names;
// anything else (malformed JSON, type mismatches) becomes a generic
// validation error.
func BindingError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewValidationError("invalid request payload", err.Error())
	}

	var messages []string
	for _, fieldError := range validationErrors {
		messages = append(messages, getFieldErrorMessage(fieldError))
	}

	first := validationErrors[0]
	return errors.NewFieldValidationError(
		fieldName(first),
		getFieldErrorMessage(first),
		strings.Join(messages, "; "),
	)
}

// fieldName converts the Go struct field name to its snake_case JSON form.
// Gin's validator reports Go field names, the API speaks JSON.
func fieldName(fe validator.FieldError) string {
	name := []rune(fe.Field())
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			// Break before an uppercase run start ("OwnerID" -> "owner_id")
			if i > 0 && (unicode.IsLower(name[i-1]) || (i+1 < len(name) && unicode.IsLower(name[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fieldName(fe)
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, param)
	case "lte":
		return fmt.Sprintf("%s must be %s or less", field, param)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
