// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the field rules of tasks and accounts.
//
// The same rules run twice: the services call them on user input before any
// store call, and the store calls them on the record it is about to write.
// A [Validator] may be scoped to a subset of fields by passing field names.
package validators

import "context"

// Validator validates the provided value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
