package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/tobin/ripple-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT used for API authorization.
	AccessToken string `json:"token"`
}

// RememberResponse carries the plaintext remember token back to the
// caller, who is responsible for its transport (e.g. a cookie). Only the
// token's digest is persisted server-side.
type RememberResponse struct {
	RememberToken string `json:"remember_token"`
}

// TokenLoginRequest defines the payload for remember-token authentication.
type TokenLoginRequest struct {
	UserID        uuid.UUID `json:"user_id"        validate:"required"`
	RememberToken string    `json:"remember_token" validate:"required"`
}

// CreatePostRequest defines the payload for creating a post.
type CreatePostRequest struct {
	Body string `json:"body" validate:"required,max=140"`
}

// PostResponse is the serialized form of a post.
type PostResponse struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPostResponse converts a domain post to its response form.
func NewPostResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Body:      post.Body,
		CreatedAt: post.CreatedAt,
	}
}

// FeedResponse is one page of a user's feed.
type FeedResponse struct {
	Posts  []PostResponse `json:"posts"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// UserIDsResponse lists user ids for the followers/following endpoints.
type UserIDsResponse struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

// FollowStatusResponse reports whether a follow edge exists.
type FollowStatusResponse struct {
	Following bool `json:"following"`
}

// UserResponse is the public serialized form of a user. Credential
// material never appears here.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse converts a domain user to its response form.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// UpdateEmailRequest defines the payload for changing the account email.
type UpdateEmailRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// UpdatePasswordRequest defines the payload for changing the account
// password. The current password is required as proof of possession.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
}
