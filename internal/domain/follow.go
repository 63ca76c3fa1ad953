package domain

import (
	"time"

	"github.com/google/uuid"
)

// FollowEdge is a directed relationship: the follower receives the
// followed user's posts in their feed. The pair (FollowerID, FollowedID)
// is unique; a user can follow another at most once at a time.
type FollowEdge struct {
	FollowerID uuid.UUID `json:"follower_id"`
	FollowedID uuid.UUID `json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewFollowEdge creates a validated follow edge from follower to followed.
// Returns ErrSelfFollow if both ends reference the same user.
func NewFollowEdge(followerID, followedID uuid.UUID) (*FollowEdge, error) {
	edge := &FollowEdge{
		FollowerID: followerID,
		FollowedID: followedID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := edge.Validate(); err != nil {
		return nil, err
	}

	return edge, nil
}

// Validate checks if the FollowEdge has valid data.
// Self-follows are rejected here before any store interaction; the
// follows table carries a CHECK constraint as a backstop.
func (e *FollowEdge) Validate() error {
	if e.FollowerID == uuid.Nil {
		return NewValidationError("follower_id", "cannot be empty", nil)
	}
	if e.FollowedID == uuid.Nil {
		return NewValidationError("followed_id", "cannot be empty", nil)
	}
	if e.FollowerID == e.FollowedID {
		return ErrSelfFollow
	}
	return nil
}
