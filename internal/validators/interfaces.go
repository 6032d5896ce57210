// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks submitted forms and post fields against the
// rules declared in their `validate` struct tags.
//
// Failures are reported as [FieldErrors], keyed by the form field name, so a
// handler can show each message next to its input.
package validators

import "context"

// Validator validates value. When fields are given, only those struct fields
// (by Go name) are checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
