// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user-entered form values before any request is
// sent to the backend.
//
// Core concepts:
//   - Validator: generic interface to validate a form model. Supports
//     optional field-level scoping for targeted validation (e.g. checking a
//     single input while the user is still typing).
//
// Rules are declared as `validate` struct tags on the models and evaluated
// by github.com/go-playground/validator/v10. A failed rule is reported as
// one of the sentinel errors in errors.go, wrapped with the offending field.
package validators

import "context"

// Validator defines a generic validation interface for form values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
