package service_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobin/ripple-api/internal/domain"
	"github.com/tobin/ripple-api/internal/mocks"
	"github.com/tobin/ripple-api/internal/service"
)

// addPost inserts a post with an explicit timestamp so ordering
// assertions are deterministic.
func addPost(t *testing.T, postStore *mocks.MockPostStore, authorID uuid.UUID, body string, at time.Time) *domain.Post {
	t.Helper()

	post, err := domain.NewPost(authorID, body)
	require.NoError(t, err)
	post.CreatedAt = at
	require.NoError(t, postStore.Create(context.Background(), post))
	return post
}

func TestFeed(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("includes own and followed posts, excludes others", func(t *testing.T) {
		t.Parallel()
		alice := uuid.New()
		bob := uuid.New()
		carol := uuid.New()

		followStore := mocks.NewMockFollowStore()
		postStore := mocks.NewMockPostStore()
		svc := service.NewFeedService(followStore, postStore, slog.Default())

		edge, err := domain.NewFollowEdge(alice, bob)
		require.NoError(t, err)
		require.NoError(t, followStore.Create(context.Background(), edge))

		own := addPost(t, postStore, alice, "own post", base)
		followed := addPost(t, postStore, bob, "followed post", base.Add(time.Minute))
		addPost(t, postStore, carol, "unfollowed post", base.Add(2*time.Minute))

		posts, err := svc.Feed(context.Background(), alice, 0, 0)
		require.NoError(t, err)
		require.Len(t, posts, 2)

		ids := []uuid.UUID{posts[0].ID, posts[1].ID}
		assert.Contains(t, ids, own.ID)
		assert.Contains(t, ids, followed.ID)
	})

	t.Run("newest first", func(t *testing.T) {
		t.Parallel()
		alice := uuid.New()
		bob := uuid.New()

		followStore := mocks.NewMockFollowStore()
		postStore := mocks.NewMockPostStore()
		svc := service.NewFeedService(followStore, postStore, slog.Default())

		edge, err := domain.NewFollowEdge(alice, bob)
		require.NoError(t, err)
		require.NoError(t, followStore.Create(context.Background(), edge))

		oldest := addPost(t, postStore, alice, "oldest", base)
		middle := addPost(t, postStore, bob, "middle", base.Add(time.Hour))
		newest := addPost(t, postStore, alice, "newest", base.Add(2*time.Hour))

		posts, err := svc.Feed(context.Background(), alice, 0, 0)
		require.NoError(t, err)
		require.Len(t, posts, 3)

		assert.Equal(t, newest.ID, posts[0].ID)
		assert.Equal(t, middle.ID, posts[1].ID)
		assert.Equal(t, oldest.ID, posts[2].ID)
	})

	t.Run("empty follow set degenerates to own posts", func(t *testing.T) {
		t.Parallel()
		alice := uuid.New()
		bob := uuid.New()

		postStore := mocks.NewMockPostStore()
		svc := service.NewFeedService(mocks.NewMockFollowStore(), postStore, slog.Default())

		own := addPost(t, postStore, alice, "mine", base)
		addPost(t, postStore, bob, "not mine", base.Add(time.Minute))

		posts, err := svc.Feed(context.Background(), alice, 0, 0)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, own.ID, posts[0].ID)
	})

	t.Run("no posts at all", func(t *testing.T) {
		t.Parallel()
		svc := service.NewFeedService(mocks.NewMockFollowStore(), mocks.NewMockPostStore(), slog.Default())

		posts, err := svc.Feed(context.Background(), uuid.New(), 0, 0)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("pagination", func(t *testing.T) {
		t.Parallel()
		alice := uuid.New()

		postStore := mocks.NewMockPostStore()
		svc := service.NewFeedService(mocks.NewMockFollowStore(), postStore, slog.Default())

		for i := 0; i < 5; i++ {
			addPost(t, postStore, alice, "post", base.Add(time.Duration(i)*time.Minute))
		}

		first, err := svc.Feed(context.Background(), alice, 2, 0)
		require.NoError(t, err)
		require.Len(t, first, 2)

		second, err := svc.Feed(context.Background(), alice, 2, 2)
		require.NoError(t, err)
		require.Len(t, second, 2)

		last, err := svc.Feed(context.Background(), alice, 2, 4)
		require.NoError(t, err)
		require.Len(t, last, 1)

		// Pages do not overlap.
		assert.NotEqual(t, first[0].ID, second[0].ID)
		assert.NotEqual(t, second[0].ID, last[0].ID)

		// Offset past the end yields an empty page, not an error.
		none, err := svc.Feed(context.Background(), alice, 2, 50)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("limit is clamped to the page size cap", func(t *testing.T) {
		t.Parallel()
		alice := uuid.New()

		postStore := mocks.NewMockPostStore()
		limitSeen := 0
		postStore.FindByAuthorsFn = func(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]*domain.Post, error) {
			limitSeen = limit
			return nil, nil
		}
		svc := service.NewFeedService(mocks.NewMockFollowStore(), postStore, slog.Default())

		_, err := svc.Feed(context.Background(), alice, service.MaxFeedPageSize+500, 0)
		require.NoError(t, err)
		assert.Equal(t, service.MaxFeedPageSize, limitSeen)

		_, err = svc.Feed(context.Background(), alice, -3, -7)
		require.NoError(t, err)
		assert.Equal(t, service.DefaultFeedPageSize, limitSeen)
	})
}
