// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"strings"

	domainerrors "authstarter/internal/domain/errors"

	validatorlib "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// requestValidator wraps a shared validator instance for Echo.
type requestValidator struct {
	validate *validatorlib.Validate
}

// New creates the Echo request validator.
func New() *requestValidator {
	validate := validatorlib.New(validatorlib.WithRequiredStructEnabled())

	// required only rejects the zero value; notblank also rejects
	// whitespace-only strings.
	_ = validate.RegisterValidation("notblank", func(fl validatorlib.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &requestValidator{
		validate: validate,
	}
}

// Validate checks a bound request struct against its validate tags. Failures
// are reported as a single validation domain error with per-field details.
func (v *requestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validatorlib.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "request validation")
	}

	details := make([]map[string]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, map[string]string{
			"field": fieldErr.Field(),
			"rule":  fieldErr.Tag(),
		})
	}

	return domainerrors.ErrValidationFailed.WithDetails(details)
}
