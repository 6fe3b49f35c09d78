package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).Valid()
	})
	return v
}

// Validate checks the template invariants: non-empty name, known category,
// min <= default <= max on every range, at least one color and material, and
// a complete corner spec when the template can be a corner.
func (t FurnitureTemplate) Validate() error {
	return structError(validate.Struct(t))
}

func (m Material) Validate() error {
	return structError(validate.Struct(m))
}

func (c Color) Validate() error {
	return structError(validate.Struct(c))
}

func structError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", fe.Namespace(), fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be >= %s", fe.Namespace(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be positive", fe.Namespace())
	case "gte":
		return fmt.Sprintf("%s must not be negative", fe.Namespace())
	case "category":
		return fmt.Sprintf("%s %q is not a known category", fe.Namespace(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag())
	}
}
