// Package auth provides the credential primitives for the application:
// bcrypt password hashing and verification, opaque remember tokens, and
// the JWT access tokens used by the HTTP layer.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher defines the interface for one-way hashing of secrets.
type PasswordHasher interface {
	// Hash derives a salted, one-way digest from the secret. The output
	// is non-deterministic (a fresh salt is embedded on every call) and
	// opaque to callers.
	Hash(secret string) (string, error)
}

// PasswordVerifier defines the interface for comparing secrets to digests.
type PasswordVerifier interface {
	// Compare checks the secret against the digest under the digest's
	// embedded parameters. Returns nil on success, ErrPasswordMismatch
	// when the secret is wrong, or ErrInvalidDigest when the digest is
	// malformed.
	Compare(digest, secret string) error
}

// BcryptHasher implements PasswordHasher and PasswordVerifier using bcrypt.
// The comparison is constant-time with respect to the secret content.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the given cost factor.
// Costs outside bcrypt's supported range fall back to bcrypt.DefaultCost;
// tests pass bcrypt.MinCost explicitly to keep suites fast.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Cost returns the effective bcrypt cost factor.
func (h *BcryptHasher) Cost() int {
	return h.cost
}

// Hash implements the PasswordHasher interface using bcrypt.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(digest), nil
}

// Compare implements the PasswordVerifier interface using bcrypt.
func (h *BcryptHasher) Compare(digest, secret string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	// Anything else means the stored digest itself could not be parsed.
	return fmt.Errorf("%w: %v", ErrInvalidDigest, err)
}

// Verify reports whether the secret matches the digest. Malformed digests
// are surfaced as ErrInvalidDigest rather than a plain false.
func (h *BcryptHasher) Verify(digest, secret string) (bool, error) {
	err := h.Compare(digest, secret)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrPasswordMismatch):
		return false, nil
	default:
		return false, err
	}
}
