package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Error message formats keyed by validation tag, shared with tests.
const (
	ErrRequired    = "is required"
	ErrMinValue    = "must be at least %s"
	ErrMaxValue    = "must be at most %s"
	ErrGreaterThan = "must be greater than %s"
	ErrMaxLength   = "must be at most %s characters long"
	ErrInvalid     = "is invalid"
)

func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		if err.Kind().String() == "string" {
			return fmt.Sprintf(ErrMaxLength, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "gt":
		return fmt.Sprintf(ErrGreaterThan, err.Param())
	case "lte":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	default:
		return ErrInvalid
	}
}
