// Package common defines shared constants and sentinel errors used across
// the client layers of jobmatch. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Validation errors.
	ErrorValidation = errors.New("validation error")

	// Token errors (malformed token or missing claims).
	ErrInvalidToken = errors.New("invalid token")
)
