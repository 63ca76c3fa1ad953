package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/tobin/ripple-api/internal/domain"
	"github.com/tobin/ripple-api/internal/service"
	"github.com/tobin/ripple-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService with canned results.
type MockJWTService struct {
	Token       string
	GenerateErr error
	Claims      *auth.Claims
	ValidateErr error
}

var _ auth.JWTService = (*MockJWTService)(nil)

func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	return m.Token, nil
}

func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Claims, nil
}

// MockUserService implements service.UserService through function fields.
// Unset fields panic, which surfaces unexpected calls in tests.
type MockUserService struct {
	RegisterFn            func(ctx context.Context, name, email, password string) (*domain.User, error)
	AuthenticateFn        func(ctx context.Context, email, password string) (*domain.User, error)
	RememberFn            func(ctx context.Context, userID uuid.UUID) (string, error)
	AuthenticateByTokenFn func(ctx context.Context, userID uuid.UUID, token string) (*domain.User, error)
	ForgetFn              func(ctx context.Context, userID uuid.UUID) error
	GetUserFn             func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateEmailFn         func(ctx context.Context, userID uuid.UUID, newEmail string) error
	UpdatePasswordFn      func(ctx context.Context, userID uuid.UUID, newPassword string) error
	DeactivateFn          func(ctx context.Context, userID uuid.UUID) error
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return m.RegisterFn(ctx, name, email, password)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	return m.AuthenticateFn(ctx, email, password)
}

func (m *MockUserService) Remember(ctx context.Context, userID uuid.UUID) (string, error) {
	return m.RememberFn(ctx, userID)
}

func (m *MockUserService) AuthenticateByToken(
	ctx context.Context,
	userID uuid.UUID,
	token string,
) (*domain.User, error) {
	return m.AuthenticateByTokenFn(ctx, userID, token)
}

func (m *MockUserService) Forget(ctx context.Context, userID uuid.UUID) error {
	return m.ForgetFn(ctx, userID)
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return m.GetUserFn(ctx, userID)
}

func (m *MockUserService) UpdateEmail(ctx context.Context, userID uuid.UUID, newEmail string) error {
	return m.UpdateEmailFn(ctx, userID, newEmail)
}

func (m *MockUserService) UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	return m.UpdatePasswordFn(ctx, userID, newPassword)
}

func (m *MockUserService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	return m.DeactivateFn(ctx, userID)
}

// MockSocialService implements service.SocialService through function fields.
type MockSocialService struct {
	FollowFn      func(ctx context.Context, followerID, followedID uuid.UUID) error
	UnfollowFn    func(ctx context.Context, followerID, followedID uuid.UUID) error
	IsFollowingFn func(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	FollowingFn   func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	FollowersFn   func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

var _ service.SocialService = (*MockSocialService)(nil)

func (m *MockSocialService) Follow(ctx context.Context, followerID, followedID uuid.UUID) error {
	return m.FollowFn(ctx, followerID, followedID)
}

func (m *MockSocialService) Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error {
	return m.UnfollowFn(ctx, followerID, followedID)
}

func (m *MockSocialService) IsFollowing(
	ctx context.Context,
	followerID, followedID uuid.UUID,
) (bool, error) {
	return m.IsFollowingFn(ctx, followerID, followedID)
}

func (m *MockSocialService) Following(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return m.FollowingFn(ctx, userID)
}

func (m *MockSocialService) Followers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return m.FollowersFn(ctx, userID)
}

// MockPostService implements service.PostService through function fields.
type MockPostService struct {
	CreatePostFn   func(ctx context.Context, authorID uuid.UUID, body string) (*domain.Post, error)
	GetPostFn      func(ctx context.Context, postID uuid.UUID) (*domain.Post, error)
	ListByAuthorFn func(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*domain.Post, error)
}

var _ service.PostService = (*MockPostService)(nil)

func (m *MockPostService) CreatePost(ctx context.Context, authorID uuid.UUID, body string) (*domain.Post, error) {
	return m.CreatePostFn(ctx, authorID, body)
}

func (m *MockPostService) GetPost(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	return m.GetPostFn(ctx, postID)
}

func (m *MockPostService) ListByAuthor(
	ctx context.Context,
	authorID uuid.UUID,
	limit, offset int,
) ([]*domain.Post, error) {
	return m.ListByAuthorFn(ctx, authorID, limit, offset)
}

// MockFeedService implements service.FeedService through a function field.
type MockFeedService struct {
	FeedFn func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Post, error)
}

var _ service.FeedService = (*MockFeedService)(nil)

func (m *MockFeedService) Feed(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.Post, error) {
	return m.FeedFn(ctx, userID, limit, offset)
}
