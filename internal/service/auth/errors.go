package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidCredentials is returned when authentication fails.
	// It is deliberately non-specific: callers cannot distinguish an
	// unknown email from a wrong password, which prevents account
	// enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordMismatch indicates a secret did not verify against a digest.
	ErrPasswordMismatch = errors.New("password does not match digest")

	// ErrInvalidDigest indicates a stored digest is malformed or corrupted.
	// This is surfaced to the caller rather than silently treated as a
	// mismatch, since it points at data corruption.
	ErrInvalidDigest = errors.New("invalid digest format")

	// ErrEntropyUnavailable indicates the system entropy source failed.
	// Token issuance must not proceed with weak randomness, so this is
	// treated as fatal by callers.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")
)
