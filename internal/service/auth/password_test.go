package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	t.Parallel()

	// MinCost keeps the test fast; production uses the configured cost.
	hasher := NewBcryptHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "correct horse battery staple", digest)

	err = hasher.Compare(digest, "correct horse battery staple")
	assert.NoError(t, err)
}

func TestBcryptHasherNonDeterministic(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("samepassword")
	require.NoError(t, err)
	second, err := hasher.Hash("samepassword")
	require.NoError(t, err)

	// Each digest carries a fresh salt.
	assert.NotEqual(t, first, second)
	assert.NoError(t, hasher.Compare(first, "samepassword"))
	assert.NoError(t, hasher.Compare(second, "samepassword"))
}

func TestBcryptHasherMismatch(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("rightpassword")
	require.NoError(t, err)

	err = hasher.Compare(digest, "wrongpassword")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestBcryptHasherMalformedDigest(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	err := hasher.Compare("not-a-bcrypt-digest", "whatever")
	assert.ErrorIs(t, err, ErrInvalidDigest)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestBcryptHasherVerify(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)
	digest, err := hasher.Hash("secret-value")
	require.NoError(t, err)

	ok, err := hasher.Verify(digest, "secret-value")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify(digest, "other-value")
	require.NoError(t, err)
	assert.False(t, ok)

	// Malformed digests are an error, not a mismatch.
	_, err = hasher.Verify("garbage", "secret-value")
	assert.ErrorIs(t, err, ErrInvalidDigest)
}

func TestNewBcryptHasherCostFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cost int
		want int
	}{
		{"zero falls back to default", 0, bcrypt.DefaultCost},
		{"negative falls back to default", -1, bcrypt.DefaultCost},
		{"above max falls back to default", bcrypt.MaxCost + 1, bcrypt.DefaultCost},
		{"min cost kept", bcrypt.MinCost, bcrypt.MinCost},
		{"default cost kept", bcrypt.DefaultCost, bcrypt.DefaultCost},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			hasher := NewBcryptHasher(tc.cost)
			assert.Equal(t, tc.want, hasher.Cost())
		})
	}
}
