// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before they reach storage.
//
// Rules are declared with ozzo-validation; failures are returned as
// *ValidationError carrying a message per JSON field name. Free-text fields
// are cleaned separately by Sanitizer.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
