// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// FieldValidator validates one decoded JSON object.
//
// It is not safe for concurrent use; create one per request.
type FieldValidator struct {
	data map[string]any

	// order keeps the fields in the order their first error was recorded.
	order  []string
	errors map[string]string
}

// New returns a validator over data. A nil map behaves like an empty one.
func New(data map[string]any) *FieldValidator {
	if data == nil {
		data = map[string]any{}
	}
	return &FieldValidator{
		data:   data,
		errors: make(map[string]string),
	}
}

// Required fails every field that is absent, null or an empty string.
func (v *FieldValidator) Required(fields ...string) *FieldValidator {
	for _, field := range fields {
		raw, ok := v.data[field]
		if !ok || raw == nil || raw == "" {
			v.fail(field, fmt.Sprintf("the field '%s' is required", field))
		}
	}
	return v
}

// Email fails a present field that is not an e-mail address once the
// characters an address cannot contain are removed.
func (v *FieldValidator) Email(field string) *FieldValidator {
	raw, ok := v.present(field)
	if !ok {
		return v
	}

	s, ok := toString(raw)
	if !ok || !emailPattern.MatchString(sanitizeEmail(s)) {
		v.fail(field, "the email is not valid")
	}
	return v
}

// MinLength fails a present field whose string form is shorter than n bytes.
func (v *FieldValidator) MinLength(field string, n int) *FieldValidator {
	raw, ok := v.present(field)
	if !ok {
		return v
	}

	s, ok := toString(raw)
	if !ok || len(s) < n {
		v.fail(field, fmt.Sprintf("the field '%s' must contain at least %d characters", field, n))
	}
	return v
}

// Numeric fails a present field that is not a number or a numeric string.
func (v *FieldValidator) Numeric(field string) *FieldValidator {
	if raw, ok := v.present(field); ok && !isNumeric(raw) {
		v.fail(field, fmt.Sprintf("the field '%s' must be a number", field))
	}
	return v
}

// Integer fails a present field that is not numeric. Like [Numeric] it
// accepts any numeric-looking value; conversion happens in [GetInt].
func (v *FieldValidator) Integer(field string) *FieldValidator {
	if raw, ok := v.present(field); ok && !isNumeric(raw) {
		v.fail(field, fmt.Sprintf("the field '%s' must be an integer", field))
	}
	return v
}

// Min fails a present field whose numeric value is less than or equal to n.
func (v *FieldValidator) Min(field string, n float64) *FieldValidator {
	if raw, ok := v.present(field); ok && toFloat(raw) <= n {
		v.fail(field, fmt.Sprintf("the field '%s' must be greater than %s",
			field, strconv.FormatFloat(n, 'f', -1, 64)))
	}
	return v
}

// In fails a present field whose string form is not one of allowed.
func (v *FieldValidator) In(field string, allowed ...string) *FieldValidator {
	raw, ok := v.present(field)
	if !ok {
		return v
	}

	s, ok := toString(raw)
	if !ok || !slices.Contains(allowed, s) {
		v.fail(field, fmt.Sprintf("the field '%s' must be one of the following values: %s",
			field, strings.Join(allowed, ", ")))
	}
	return v
}

// Date fails a present field that cannot be parsed with layout.
func (v *FieldValidator) Date(field, layout string) *FieldValidator {
	raw, ok := v.present(field)
	if !ok {
		return v
	}

	s, ok := raw.(string)
	if !ok {
		v.fail(field, fmt.Sprintf("the field '%s' must be a valid date", field))
		return v
	}
	if _, err := time.Parse(layout, strings.TrimSpace(s)); err != nil {
		v.fail(field, fmt.Sprintf("the field '%s' must be a valid date", field))
	}
	return v
}

// Fails reports whether any rule recorded an error.
func (v *FieldValidator) Fails() bool {
	return len(v.errors) > 0
}

// Errors returns a copy of the field -> message mapping.
func (v *FieldValidator) Errors() map[string]string {
	return maps.Clone(v.errors)
}

// FirstError returns the first recorded message, or "" when validation passed.
func (v *FieldValidator) FirstError() string {
	if len(v.order) == 0 {
		return ""
	}
	return v.errors[v.order[0]]
}

// Err returns the first failure as a [*ValidationError], or nil.
func (v *FieldValidator) Err() error {
	if len(v.order) == 0 {
		return nil
	}
	field := v.order[0]
	return &ValidationError{Field: field, Message: v.errors[field]}
}

// Sanitize returns the field with markup tags removed and the remaining
// HTML-special characters escaped. Nil when the field is absent or not a
// scalar.
func (v *FieldValidator) Sanitize(field string) *string {
	raw, ok := v.present(field)
	if !ok {
		return nil
	}
	s, ok := toString(raw)
	if !ok {
		return nil
	}

	clean := sanitizeString(s)
	return &clean
}

// SanitizeEmail returns the field stripped of the characters an e-mail
// address cannot contain.
func (v *FieldValidator) SanitizeEmail(field string) *string {
	raw, ok := v.present(field)
	if !ok {
		return nil
	}
	s, ok := toString(raw)
	if !ok {
		return nil
	}

	clean := sanitizeEmail(s)
	return &clean
}

// GetInt returns the field coerced to int64, or nil when it is absent, null
// or an empty string.
func (v *FieldValidator) GetInt(field string) *int64 {
	raw, ok := v.present(field)
	if !ok || raw == "" {
		return nil
	}

	i := toInt(raw)
	return &i
}

// GetFloat returns the field coerced to float64, or nil when it is absent.
func (v *FieldValidator) GetFloat(field string) *float64 {
	raw, ok := v.present(field)
	if !ok {
		return nil
	}

	f := toFloat(raw)
	return &f
}

// GetString returns the untouched string form of a scalar field, "" when it
// is absent or not a scalar. Used for secrets that must not be sanitized.
func (v *FieldValidator) GetString(field string) string {
	s, _ := toString(v.data[field])
	return s
}

// Get returns the raw value, nil when absent.
func (v *FieldValidator) Get(field string) any {
	return v.data[field]
}

func (v *FieldValidator) present(field string) (any, bool) {
	raw, ok := v.data[field]
	return raw, ok && raw != nil
}

// fail records msg unless field already has an error.
func (v *FieldValidator) fail(field, msg string) {
	if _, failed := v.errors[field]; failed {
		return
	}
	v.order = append(v.order, field)
	v.errors[field] = msg
}
