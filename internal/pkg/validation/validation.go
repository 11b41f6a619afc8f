// Package validation wraps go-playground/validator for form input and
// configuration. The same Validator backs echo's c.Validate.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/studycare/studycare-client/internal/core/domain"
)

// Validator turns validator.ValidationErrors into one readable message.
type Validator struct {
	v *validator.Validate
}

var (
	shared     *Validator
	sharedOnce sync.Once
)

// Default returns the process-wide Validator. validator.Validate caches
// struct metadata, so sharing one instance is preferred.
func Default() *Validator {
	sharedOnce.Do(func() {
		shared = New()
	})
	return shared
}

func New() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Struct validates i and returns an error wrapping domain.ErrInvalidInput.
func (v *Validator) Struct(i any) error {
	if err := v.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// Validate satisfies the echo.Validator interface.
func (v *Validator) Validate(i any) error {
	return v.Struct(i)
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid URL"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
