// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns raw, untrusted request input into validated,
// sanitized values.
//
// Core concepts:
//   - FieldValidator: a builder over a decoded JSON object. Each rule call
//     records at most one message per field (the first failure wins) and
//     returns the validator, so rule sets read as a chain.
//   - Rules: a declared rule set for one operation, applied by the HTTP
//     pipeline before a handler runs.
//   - Accessors (Sanitize, GetInt, ...) re-derive cleaned values from the
//     raw input regardless of rule outcome; check Fails first.
//
// Numeric checks are deliberately permissive: any numeric-looking value is
// accepted (negative numbers included) and range constraints beyond Min are
// left to the persistence layer.
package validators

// Rules applies a declared rule set to v.
type Rules func(v *FieldValidator)

// Apply runs every rule set in order against a fresh validator for data.
func Apply(data map[string]any, rules ...Rules) *FieldValidator {
	v := New(data)
	for _, r := range rules {
		if r != nil {
			r(v)
		}
	}
	return v
}
