// Package id generates opaque record identifiers.
package id

import "github.com/google/uuid"

// New returns a random UUIDv4 string. IDs are opaque to callers; uniqueness
// within a collection is the only property relied upon.
func New() string {
	return uuid.NewString()
}

// IsValid reports whether s parses as a UUID.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
