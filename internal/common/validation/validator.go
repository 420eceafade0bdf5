// Package validation validates request structs outside the HTTP layer,
// so services enforce their own contracts even when called directly.
// It reads the same `binding` tags gin uses, keeping the two layers in
// agreement about what a valid request is.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.SetTagName("binding")
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks a struct against its binding tags. Returns nil when
// the value is valid.
func Validate(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrors []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("field must satisfy %s constraint", fe.Tag()),
		})
	}
	return fieldErrors
}

// Describe flattens field errors into one human-readable detail string.
func Describe(fieldErrors []FieldError) string {
	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}
