package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// rememberTokenBytes is the entropy of a remember token. 32 bytes gives
// 256 bits, comfortably above the 128-bit floor for bearer secrets.
const rememberTokenBytes = 32

// NewRememberToken generates a cryptographically secure, URL-safe opaque
// token. Every call returns a fresh value; no state is kept. The caller
// hashes the token before persisting anything — the plaintext exists only
// in memory and on the wire to the client.
//
// Returns ErrEntropyUnavailable if the system entropy source fails; token
// issuance must not proceed in that case.
func NewRememberToken() (string, error) {
	buf := make([]byte, rememberTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
