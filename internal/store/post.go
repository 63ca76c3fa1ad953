package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/tobin/ripple-api/internal/domain"
)

// PostStore defines the interface for post persistence. Posts are
// append-only content items keyed by author and creation time; the feed
// is assembled by querying them with an author-set predicate.
type PostStore interface {
	// Create saves a new post to the store.
	// Returns validation errors from the domain Post if data is invalid.
	// Returns ErrInvalidEntity if the author does not exist.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// FindByAuthor retrieves the given author's posts in reverse
	// chronological order, paginated by limit/offset.
	FindByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*domain.Post, error)

	// FindByAuthors retrieves posts whose author is any of authorIDs, in
	// reverse chronological order (created_at DESC, id DESC as a
	// deterministic tiebreak), paginated by limit/offset. An empty
	// author set yields an empty slice. Each call re-queries the store,
	// so repeated calls observe newly created posts.
	FindByAuthors(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]*domain.Post, error)

	// CountByAuthor returns the number of posts by the given author.
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)

	// DeleteAllForAuthor removes every post by the given author. Used by
	// the identity-deactivation fan-out. Removing zero posts is not an
	// error.
	DeleteAllForAuthor(ctx context.Context, authorID uuid.UUID) error

	// WithTx returns a new PostStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) PostStore
}
