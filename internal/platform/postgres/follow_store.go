package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tobin/ripple-api/internal/domain"
	"github.com/tobin/ripple-api/internal/platform/logger"
	"github.com/tobin/ripple-api/internal/store"
)

// PostgresFollowStore implements the store.FollowStore interface
// using a PostgreSQL database as the storage backend. Edges are rows in
// the follows join table; every query here is an explicit join-table
// query, no hidden object-graph traversal.
type PostgresFollowStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFollowStore creates a new PostgreSQL implementation of the
// FollowStore interface.
func NewPostgresFollowStore(db store.DBTX, logger *slog.Logger) *PostgresFollowStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresFollowStore{
		db:     db,
		logger: logger.With(slog.String("component", "follow_store")),
	}
}

// Ensure PostgresFollowStore implements store.FollowStore interface
var _ store.FollowStore = (*PostgresFollowStore)(nil)

// Create implements store.FollowStore.Create
// The composite primary key on (follower_id, followed_id) serializes
// concurrent inserts; the losing caller gets store.ErrAlreadyFollowing.
func (s *PostgresFollowStore) Create(ctx context.Context, edge *domain.FollowEdge) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := edge.Validate(); err != nil {
		log.Warn("follow edge validation failed",
			slog.String("error", err.Error()),
			slog.String("follower_id", edge.FollowerID.String()),
			slog.String("followed_id", edge.FollowedID.String()))
		return err
	}

	query := `
		INSERT INTO follows (follower_id, followed_id, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query, edge.FollowerID, edge.FollowedID, edge.CreatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			log.Debug("follow edge already exists",
				slog.String("follower_id", edge.FollowerID.String()),
				slog.String("followed_id", edge.FollowedID.String()))
			return store.ErrAlreadyFollowing
		case isCheckViolation(err):
			// Backstop for the domain-level check.
			return domain.ErrSelfFollow
		case isForeignKeyViolation(err):
			return store.ErrUserNotFound
		}
		log.Error("failed to create follow edge",
			slog.String("error", err.Error()),
			slog.String("follower_id", edge.FollowerID.String()),
			slog.String("followed_id", edge.FollowedID.String()))
		return err
	}

	log.Info("follow edge created",
		slog.String("follower_id", edge.FollowerID.String()),
		slog.String("followed_id", edge.FollowedID.String()))
	return nil
}

// Delete implements store.FollowStore.Delete
func (s *PostgresFollowStore) Delete(ctx context.Context, followerID, followedID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM follows
		WHERE follower_id = $1 AND followed_id = $2
	`
	result, err := s.db.ExecContext(ctx, query, followerID, followedID)
	if err != nil {
		log.Error("failed to delete follow edge",
			slog.String("error", err.Error()),
			slog.String("follower_id", followerID.String()),
			slog.String("followed_id", followedID.String()))
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		log.Debug("no follow edge to delete",
			slog.String("follower_id", followerID.String()),
			slog.String("followed_id", followedID.String()))
		return store.ErrNotFollowing
	}

	log.Info("follow edge deleted",
		slog.String("follower_id", followerID.String()),
		slog.String("followed_id", followedID.String()))
	return nil
}

// Exists implements store.FollowStore.Exists
func (s *PostgresFollowStore) Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM follows
			WHERE follower_id = $1 AND followed_id = $2
		)
	`
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, followerID, followedID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// FollowedIDs implements store.FollowStore.FollowedIDs
func (s *PostgresFollowStore) FollowedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT followed_id FROM follows
		WHERE follower_id = $1
	`
	return s.queryIDs(ctx, query, userID)
}

// FollowerIDs implements store.FollowStore.FollowerIDs
func (s *PostgresFollowStore) FollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT follower_id FROM follows
		WHERE followed_id = $1
	`
	return s.queryIDs(ctx, query, userID)
}

// DeleteAllForUser implements store.FollowStore.DeleteAllForUser
// Both edge directions are removed: edges the user created and edges
// pointing at them.
func (s *PostgresFollowStore) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM follows
		WHERE follower_id = $1 OR followed_id = $1
	`
	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to delete follow edges for user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	if rows, err := result.RowsAffected(); err == nil {
		log.Debug("deleted follow edges for user",
			slog.String("user_id", userID.String()),
			slog.Int64("edges", rows))
	}
	return nil
}

// WithTx implements store.FollowStore.WithTx
func (s *PostgresFollowStore) WithTx(tx *sql.Tx) store.FollowStore {
	return &PostgresFollowStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *PostgresFollowStore) queryIDs(ctx context.Context, query string, arg any) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
