// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound input structs.
package validator

import (
	domainerrors "cinelog/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a single validator instance shared across requests.
type Validator struct {
	validate *validator.Validate
}

// New builds the request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator. Rule violations surface as
// ErrValidationFailed with the offending fields in the details.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
