// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"showmyshop/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request structs using `validate` tags.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(field.Tag.Get("query"), ",")
		}

		return name
	})

	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return formatErrors(fieldErrs)
		}

		return errors.WithStack(err)
	}

	return nil
}

// ValidationError lists the failing fields in request order.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

func formatErrors(errs validator.ValidationErrors) error {
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}

	return &ValidationError{Fields: fields}
}
