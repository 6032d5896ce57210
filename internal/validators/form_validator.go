// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// formValidator validates structs through their `validate` tags and reports
// failures by the name in their `form` tag, so handlers can show each
// message next to the matching input.
type formValidator struct {
	validate *validator.Validate
}

// NewFormValidator returns a [Validator] backed by go-playground/validator.
func NewFormValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	return &formValidator{validate: v}
}

// Validate checks value, a struct or a pointer to one. When fields are given
// only those struct fields are checked.
func (f *formValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = f.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = f.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fieldErrors := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		if _, seen := fieldErrors[fe.Field()]; !seen {
			fieldErrors[fe.Field()] = message(fe)
		}
	}

	return fieldErrors
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "url":
		return "Invalid URL."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s.", fe.Param())
	}

	return "Invalid value."
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}
