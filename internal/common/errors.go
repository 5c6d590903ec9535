// Package common defines sentinel errors and small helpers shared
// across layers. Callers should match errors with errors.Is.
package common

import "errors"

var (
	// Input errors (empty field, password mismatch). Surfaced to the
	// user for correction, never retried.
	ErrValidation = errors.New("validation error")

	// Account lifecycle errors.
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrNoAccount          = errors.New("no account found")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDecode marks stored data that cannot be parsed. Call sites
	// treat such a record as absent, never as a partial account.
	ErrDecode = errors.New("corrupt stored record")
)
