package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/tobin/ripple-api/internal/domain"
)

// FollowStore defines the interface for follow-edge persistence: the
// directed social graph between users. Relationships are explicit
// join-table rows, queried directly.
type FollowStore interface {
	// Create inserts a follow edge after validating it.
	// Returns ErrAlreadyFollowing if the edge already exists; the
	// follows table's primary key serializes concurrent inserts so a
	// race surfaces as this error, never as a duplicate row.
	// Returns domain.ErrSelfFollow for a self-referencing edge.
	Create(ctx context.Context, edge *domain.FollowEdge) error

	// Delete removes the edge from follower to followed.
	// Returns ErrNotFollowing if no such edge exists.
	Delete(ctx context.Context, followerID, followedID uuid.UUID) error

	// Exists reports whether follower currently follows followed.
	// Pure query; no side effects.
	Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)

	// FollowedIDs returns the ids of every user the given user follows.
	// Returns an empty slice when the user follows nobody.
	FollowedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// FollowerIDs returns the ids of every user following the given user.
	// Returns an empty slice when the user has no followers.
	FollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// DeleteAllForUser removes every edge where the user is either
	// endpoint. Used by the identity-deactivation fan-out. Removing
	// zero edges is not an error.
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error

	// WithTx returns a new FollowStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) FollowStore
}
