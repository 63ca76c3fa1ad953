package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tobin/ripple-api/internal/domain"
	"github.com/tobin/ripple-api/internal/store"
)

// Feed pagination bounds. Requests outside these are clamped, never
// rejected.
const (
	DefaultFeedPageSize = 30
	MaxFeedPageSize     = 100
)

// FeedService assembles the set of posts visible to a user: everything
// authored by the user or by anyone they follow, newest first.
type FeedService interface {
	// Feed returns one page of the user's feed. Each call re-resolves
	// the follow set and re-queries the post store, so consecutive calls
	// observe a fresh snapshot. A user with no follows and no posts gets
	// an empty slice, not an error.
	Feed(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Post, error)
}

// FeedServiceImpl implements the FeedService interface
type FeedServiceImpl struct {
	followStore store.FollowStore
	postStore   store.PostStore
	logger      *slog.Logger
}

// NewFeedService creates a new FeedService
func NewFeedService(
	followStore store.FollowStore,
	postStore store.PostStore,
	logger *slog.Logger,
) *FeedServiceImpl {
	return &FeedServiceImpl{
		followStore: followStore,
		postStore:   postStore,
		logger:      logger.With(slog.String("component", "feed_service")),
	}
}

var _ FeedService = (*FeedServiceImpl)(nil)

// Feed resolves the follow set and queries posts with the author-id
// predicate: authorId = userId OR authorId IN followedIds(userId).
// With an empty follow set the predicate degenerates to the user's own
// posts.
func (s *FeedServiceImpl) Feed(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.Post, error) {
	if limit <= 0 {
		limit = DefaultFeedPageSize
	} else if limit > MaxFeedPageSize {
		limit = MaxFeedPageSize
	}
	if offset < 0 {
		offset = 0
	}

	followedIDs, err := s.followStore.FollowedIDs(ctx, userID)
	if err != nil {
		s.logger.Error("failed to resolve follow set for feed",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to resolve follow set: %w", err)
	}

	authorIDs := append(followedIDs, userID)

	posts, err := s.postStore.FindByAuthors(ctx, authorIDs, limit, offset)
	if err != nil {
		s.logger.Error("failed to query feed posts",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to query feed: %w", err)
	}

	s.logger.Debug("feed assembled",
		"user_id", userID,
		"author_count", len(authorIDs),
		"post_count", len(posts))
	return posts, nil
}
