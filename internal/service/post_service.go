package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tobin/ripple-api/internal/domain"
	"github.com/tobin/ripple-api/internal/store"
)

// PostService provides post creation and listing.
type PostService interface {
	// CreatePost creates a new post by the given author.
	// Returns validation errors for an invalid body.
	CreatePost(ctx context.Context, authorID uuid.UUID, body string) (*domain.Post, error)

	// GetPost retrieves a post by its ID.
	GetPost(ctx context.Context, postID uuid.UUID) (*domain.Post, error)

	// ListByAuthor returns the author's own posts, newest first.
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*domain.Post, error)
}

// PostServiceImpl implements the PostService interface
type PostServiceImpl struct {
	postStore store.PostStore
	logger    *slog.Logger
}

// NewPostService creates a new PostService
func NewPostService(postStore store.PostStore, logger *slog.Logger) *PostServiceImpl {
	return &PostServiceImpl{
		postStore: postStore,
		logger:    logger.With(slog.String("component", "post_service")),
	}
}

var _ PostService = (*PostServiceImpl)(nil)

// CreatePost creates a new post by the given author.
func (s *PostServiceImpl) CreatePost(
	ctx context.Context,
	authorID uuid.UUID,
	body string,
) (*domain.Post, error) {
	post, err := domain.NewPost(authorID, body)
	if err != nil {
		s.logger.Debug("post validation failed",
			"error", err,
			"author_id", authorID)
		return nil, err
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		s.logger.Error("failed to create post",
			"error", err,
			"post_id", post.ID,
			"author_id", authorID)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created",
		"post_id", post.ID,
		"author_id", authorID)
	return post, nil
}

// GetPost retrieves a post by its ID.
func (s *PostServiceImpl) GetPost(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		if !errors.Is(err, store.ErrPostNotFound) {
			s.logger.Error("failed to retrieve post",
				"error", err,
				"post_id", postID)
		}
		return nil, err
	}
	return post, nil
}

// ListByAuthor returns the author's own posts, newest first.
func (s *PostServiceImpl) ListByAuthor(
	ctx context.Context,
	authorID uuid.UUID,
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

	posts, err := s.postStore.FindByAuthor(ctx, authorID, limit, offset)
	if err != nil {
		s.logger.Error("failed to list posts by author",
			"error", err,
			"author_id", authorID)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}
