// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the blog API.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     The variadic field names narrow or extend what is checked; their exact
//     meaning is documented on each implementation.
//   - ValidationError: the field-keyed error every validator returns, so the
//     transport layer can render per-field messages.
//
// Validators are injected into the service layer and never touch storage.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input, optionally scoped by field names.
	Validate(context.Context, any, ...string) error
}
