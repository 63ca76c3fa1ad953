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

// SocialService maintains the directed follow graph between users.
type SocialService interface {
	// Follow creates a follow edge from follower to followed.
	// Returns domain.ErrSelfFollow when both ids are equal and
	// store.ErrAlreadyFollowing when the edge already exists. Callers
	// wanting idempotent semantics can treat ErrAlreadyFollowing as
	// success; the error is surfaced so retry logic can tell the cases
	// apart.
	Follow(ctx context.Context, followerID, followedID uuid.UUID) error

	// Unfollow removes the edge from follower to followed.
	// Returns store.ErrNotFollowing when no such edge exists.
	Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error

	// IsFollowing reports whether follower currently follows followed.
	// Always false for a user against themselves, by construction.
	IsFollowing(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)

	// Following returns the ids of every user the given user follows.
	Following(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// Followers returns the ids of every user following the given user.
	Followers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// SocialServiceImpl implements the SocialService interface
type SocialServiceImpl struct {
	followStore store.FollowStore
	logger      *slog.Logger
}

// NewSocialService creates a new SocialService
func NewSocialService(followStore store.FollowStore, logger *slog.Logger) *SocialServiceImpl {
	return &SocialServiceImpl{
		followStore: followStore,
		logger:      logger.With(slog.String("component", "social_service")),
	}
}

var _ SocialService = (*SocialServiceImpl)(nil)

// Follow creates a follow edge from follower to followed.
func (s *SocialServiceImpl) Follow(ctx context.Context, followerID, followedID uuid.UUID) error {
	edge, err := domain.NewFollowEdge(followerID, followedID)
	if err != nil {
		s.logger.Debug("follow rejected",
			"error", err,
			"follower_id", followerID,
			"followed_id", followedID)
		return err
	}

	if err := s.followStore.Create(ctx, edge); err != nil {
		if errors.Is(err, store.ErrAlreadyFollowing) {
			s.logger.Debug("already following",
				"follower_id", followerID,
				"followed_id", followedID)
			return err
		}
		s.logger.Error("failed to create follow edge",
			"error", err,
			"follower_id", followerID,
			"followed_id", followedID)
		return fmt.Errorf("failed to follow: %w", err)
	}

	return nil
}

// Unfollow removes the edge from follower to followed.
func (s *SocialServiceImpl) Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error {
	if err := s.followStore.Delete(ctx, followerID, followedID); err != nil {
		if errors.Is(err, store.ErrNotFollowing) {
			s.logger.Debug("not following",
				"follower_id", followerID,
				"followed_id", followedID)
			return err
		}
		s.logger.Error("failed to delete follow edge",
			"error", err,
			"follower_id", followerID,
			"followed_id", followedID)
		return fmt.Errorf("failed to unfollow: %w", err)
	}

	return nil
}

// IsFollowing reports whether follower currently follows followed.
func (s *SocialServiceImpl) IsFollowing(
	ctx context.Context,
	followerID, followedID uuid.UUID,
) (bool, error) {
	// Self-follows cannot exist, so skip the query.
	if followerID == followedID {
		return false, nil
	}

	following, err := s.followStore.Exists(ctx, followerID, followedID)
	if err != nil {
		s.logger.Error("failed to check follow edge",
			"error", err,
			"follower_id", followerID,
			"followed_id", followedID)
		return false, fmt.Errorf("failed to check following: %w", err)
	}
	return following, nil
}

// Following returns the ids of every user the given user follows.
func (s *SocialServiceImpl) Following(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.followStore.FollowedIDs(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list followed users",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	return ids, nil
}

// Followers returns the ids of every user following the given user.
func (s *SocialServiceImpl) Followers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.followStore.FollowerIDs(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list followers",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return ids, nil
}
