package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists the fields that failed validation, in declaration
// order. Handlers render it as a {"missingFields": [...]} body.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. All failing fields are
// collected, not just the first, so the response can name every one.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]string, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			return &ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}
