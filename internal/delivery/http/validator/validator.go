// Package validator wires go-playground/validator into echo's request validation.
package validator

import (
	domainerrors "hivefund/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a request validator with struct tag support.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks the bound request struct against its validate tags.
// Failures surface as a validation error carrying the offending fields.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
