package model

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			_, err := ParseRole(fl.Field().String())
			return err == nil
		})
		_ = validate.RegisterValidation("nomarkup", noMarkup)
	})
	return validate
}

// noMarkup accepts identifiers that cannot open a tag. Identifiers are stored
// verbatim, so they are rejected rather than rewritten.
func noMarkup(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r == '<' || r == '>' || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// FormatValidationError converts validator errors to ErrorDetail.
// Only the first failing field is reported.
func FormatValidationError(err error) *ErrorDetail {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		e := validationErrors[0]
		return &ErrorDetail{
			Code:    "bad_request",
			Message: "Field validation for '" + e.Field() + "' failed on the '" + e.Tag() + "' tag",
		}
	}

	return &ErrorDetail{
		Code:    "bad_request",
		Message: err.Error(),
	}
}
