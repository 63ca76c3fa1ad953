package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tobin/ripple-api/internal/domain"
	"github.com/tobin/ripple-api/internal/platform/logger"
	"github.com/tobin/ripple-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Create implements store.PostStore.Create
// Returns store.ErrInvalidEntity if the author does not exist (foreign
// key violation).
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	query := `
		INSERT INTO posts (id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, post.ID, post.AuthorID, post.Body, post.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("author not found during post creation",
				slog.String("post_id", post.ID.String()),
				slog.String("author_id", post.AuthorID.String()))
			return fmt.Errorf("%w: author with ID %s not found",
				store.ErrInvalidEntity, post.AuthorID)
		}
		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	log.Info("post created successfully",
		slog.String("post_id", post.ID.String()),
		slog.String("author_id", post.AuthorID.String()))
	return nil
}

// GetByID implements store.PostStore.GetByID
func (s *PostgresPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, author_id, body, created_at
		FROM posts
		WHERE id = $1
	`
	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Body,
		&post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.String("post_id", id.String()))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, err
	}
	return &post, nil
}

// FindByAuthor implements store.PostStore.FindByAuthor
func (s *PostgresPostStore) FindByAuthor(
	ctx context.Context,
	authorID uuid.UUID,
	limit, offset int,
) ([]*domain.Post, error) {
	return s.FindByAuthors(ctx, []uuid.UUID{authorID}, limit, offset)
}

// FindByAuthors implements store.PostStore.FindByAuthors
// This is the feed query: the author-id predicate is
// author_id IN (authorIDs), ordered newest first with id as a
// deterministic tiebreak, bounded by limit/offset.
func (s *PostgresPostStore) FindByAuthors(
	ctx context.Context,
	authorIDs []uuid.UUID,
	limit, offset int,
) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(authorIDs) == 0 {
		return []*domain.Post{}, nil
	}

	// Build the IN clause explicitly; database/sql has no slice binding.
	placeholders := make([]string, len(authorIDs))
	args := make([]any, 0, len(authorIDs)+2)
	for i, id := range authorIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args = append(args, id)
	}
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
		SELECT id, author_id, body, created_at
		FROM posts
		WHERE author_id IN (%s)
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, strings.Join(placeholders, ", "), len(authorIDs)+1, len(authorIDs)+2)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query posts by authors",
			slog.String("error", err.Error()),
			slog.Int("author_count", len(authorIDs)))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Body, &post.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// CountByAuthor implements store.PostStore.CountByAuthor
func (s *PostgresPostStore) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM posts WHERE author_id = $1`,
		authorID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteAllForAuthor implements store.PostStore.DeleteAllForAuthor
func (s *PostgresPostStore) DeleteAllForAuthor(ctx context.Context, authorID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE author_id = $1`, authorID)
	if err != nil {
		log.Error("failed to delete posts for author",
			slog.String("error", err.Error()),
			slog.String("author_id", authorID.String()))
		return err
	}

	if rows, err := result.RowsAffected(); err == nil {
		log.Debug("deleted posts for author",
			slog.String("author_id", authorID.String()),
			slog.Int64("posts", rows))
	}
	return nil
}

// WithTx implements store.PostStore.WithTx
func (s *PostgresPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostgresPostStore{
		db:     tx,
		logger: s.logger,
	}
}
