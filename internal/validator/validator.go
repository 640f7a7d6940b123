package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phoneRgx accepts international formats with optional separators, e.g.
// "+44 20 7946 0958" or "555-0123".
var phoneRgx = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{4,24}$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("phone", validatePhone)

	return validator
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "phone":
		return "must be a valid phone number"
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "gtfield":
		return fmt.Sprintf("must be after %s", err.Param())
	default:
		return "is invalid"
	}
}
