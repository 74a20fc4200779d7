// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the services.
//
// Rules live next to the data as `validate` struct tags on the types in
// package models and are enforced by go-playground/validator. Failures are
// reported as [ErrInvalidPayload] wrapping a [FieldError] that names the first
// offending JSON field.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields (Go field names,
	// dotted for nested structs).
	Validate(context.Context, any, ...string) error
}
