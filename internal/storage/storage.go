// Package storage defines the errors shared by the persistence backends in
// its sub-packages. Services match on these with errors.Is.
package storage

import "errors"

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a unique key (email, slug) is taken.
	ErrConflict = errors.New("record already exists")
	// ErrCorrupt is returned when a stored record lacks a required field.
	ErrCorrupt = errors.New("stored record is malformed")
	// ErrUnavailable is returned when no backend is configured.
	ErrUnavailable = errors.New("storage unavailable")
)

// MaxListSize caps every list query.
const MaxListSize = 100
