// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks structural rules on decoded connection documents
// that the decoders themselves cannot express, such as a required field or a
// non-negative duration.
//
// Usage patterns:
//  1. Construct a Validator (e.g. NewPlainOptionsValidator).
//  2. Call Validate with the value and, optionally, the names of the fields
//     to check; with no names every rule for that type runs.
package validators

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(any, ...string) error
}
