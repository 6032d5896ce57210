// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidInput    = errors.New("invalid input")
)

// FieldErrors maps a form field name to a human-readable message.
// It is returned by [Validator.Validate] when validation fails and matches
// [ErrInvalidInput] with errors.Is.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+f[field])
	}

	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (f FieldErrors) Is(target error) bool {
	return target == ErrInvalidInput
}
