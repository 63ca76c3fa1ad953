package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// These tests cover store construction without touching a database.
// Query behavior is exercised through the service layer against the
// in-memory stores, and against a live database in integration runs.

func TestNewPostgresUserStoreCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cost int
		want int
	}{
		{"explicit cost kept", bcrypt.MinCost, bcrypt.MinCost},
		{"zero falls back to default", 0, bcrypt.DefaultCost},
		{"out of range falls back to default", 99, bcrypt.DefaultCost},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := NewPostgresUserStore(nil, tc.cost, nil)
			assert.Equal(t, tc.want, s.BcryptCost())
		})
	}
}

func TestUserStoreWithTx(t *testing.T) {
	t.Parallel()

	s := NewPostgresUserStore(nil, bcrypt.MinCost, nil)
	txStore := s.WithTx(nil)

	// The transactional copy is a distinct store bound to the tx, with
	// the same credential codec.
	assert.NotSame(t, s, txStore)
	ts, ok := txStore.(*PostgresUserStore)
	assert.True(t, ok)
	assert.Equal(t, s.BcryptCost(), ts.BcryptCost())
}
