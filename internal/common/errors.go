// Package common defines shared sentinel errors used across the service
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound         = errors.New("not found")
	ErrDuplicateAccount = errors.New("account already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal   = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// ErrInvalidCredentials deliberately covers both an unknown email and
	// a wrong password so callers cannot enumerate registered accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCorruptCredential marks a stored credential hash that cannot be
	// parsed. This is a data-integrity fault, never a login failure.
	ErrCorruptCredential = errors.New("corrupt credential hash")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
