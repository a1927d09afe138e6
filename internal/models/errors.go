package models

import "errors"

// Sentinel errors for the failure kinds handlers translate into responses.
// Store and service code wraps these with fmt.Errorf and %w so callers can
// match with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation failed")
	ErrNoChanges          = errors.New("no changes provided")
	ErrNoPendingChange    = errors.New("no pending email change")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid or expired otp")
	ErrMailUnreachable    = errors.New("could not send mail")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)
