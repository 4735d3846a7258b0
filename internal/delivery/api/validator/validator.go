// Package validator adapts the shared request rules to echo.Validator.
package validator

import (
	"yelocar/internal/domain/validation"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New wraps v; a nil v gets the default rule set.
func New(v *validator.Validate) *RequestValidator {
	if v == nil {
		v = validation.New()
	}

	return &RequestValidator{validate: v}
}

// Validate returns a *domainerrors.ValidationError for the first failing field.
func (rv *RequestValidator) Validate(i any) error {
	return validation.Struct(rv.validate, i)
}
