// internal/app/system/normalize/normalize.go

// Package normalize provides input normalization helpers used by features
// before validation and storage. Keeping these in one place guarantees that
// lookups (email, status) compare consistently everywhere.
package normalize

import "strings"

// Email trims whitespace and lowercases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Status trims and lowercases a status value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam trims a free-form query or form parameter.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
