package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/tobin/ripple-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// It handles domain validation and password hashing internally.
	// Returns ErrEmailExists if the email is already taken; email
	// uniqueness is case-insensitive.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user contains all fields except the plaintext password.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address. The lookup is
	// performed against the normalized (lowercase) form.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update modifies an existing user's details. The caller must provide
	// a complete user object including HashedPassword. If a new plaintext
	// Password is set, it is hashed and HashedPassword replaced.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if updating to an email that already exists.
	Update(ctx context.Context, user *domain.User) error

	// UpdateRememberDigest overwrites the stored remember-token digest.
	// Passing nil clears it, invalidating any outstanding token. This is
	// a single-column write with last-write-wins semantics under
	// concurrency.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateRememberDigest(ctx context.Context, id uuid.UUID, digest *string) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	// This operation is permanent; dependent rows (posts, follow edges)
	// are removed by the aggregate's deactivation fan-out.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new UserStore instance that uses the provided
	// transaction, allowing multiple operations to execute atomically.
	// The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
