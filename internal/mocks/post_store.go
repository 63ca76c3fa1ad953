package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/tobin/ripple-api/internal/domain"
	"github.com/tobin/ripple-api/internal/store"
)

// MockPostStore implements store.PostStore for testing.
// The default implementation keeps posts in memory and reproduces the
// feed query's ordering contract: created_at descending, id descending
// as tiebreak.
type MockPostStore struct {
	CreateFn             func(ctx context.Context, post *domain.Post) error
	GetByIDFn            func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	FindByAuthorFn       func(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*domain.Post, error)
	FindByAuthorsFn      func(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]*domain.Post, error)
	CountByAuthorFn      func(ctx context.Context, authorID uuid.UUID) (int, error)
	DeleteAllForAuthorFn func(ctx context.Context, authorID uuid.UUID) error

	mu    sync.Mutex
	Posts []*domain.Post
}

// NewMockPostStore creates a new mock store with initialized defaults.
func NewMockPostStore() *MockPostStore {
	return &MockPostStore{}
}

var _ store.PostStore = (*MockPostStore)(nil)

// Create implements the PostStore interface
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}

	if err := post.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Posts = append(m.Posts, post)
	return nil
}

// GetByID implements the PostStore interface
func (m *MockPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, post := range m.Posts {
		if post.ID == id {
			return post, nil
		}
	}
	return nil, store.ErrPostNotFound
}

// FindByAuthor implements the PostStore interface
func (m *MockPostStore) FindByAuthor(
	ctx context.Context,
	authorID uuid.UUID,
	limit, offset int,
) ([]*domain.Post, error) {
	if m.FindByAuthorFn != nil {
		return m.FindByAuthorFn(ctx, authorID, limit, offset)
	}
	return m.FindByAuthors(ctx, []uuid.UUID{authorID}, limit, offset)
}

// FindByAuthors implements the PostStore interface
func (m *MockPostStore) FindByAuthors(
	ctx context.Context,
	authorIDs []uuid.UUID,
	limit, offset int,
) ([]*domain.Post, error) {
	if m.FindByAuthorsFn != nil {
		return m.FindByAuthorsFn(ctx, authorIDs, limit, offset)
	}

	authors := make(map[uuid.UUID]bool, len(authorIDs))
	for _, id := range authorIDs {
		authors[id] = true
	}

	m.mu.Lock()
	matched := make([]*domain.Post, 0)
	for _, post := range m.Posts {
		if authors[post.AuthorID] {
			matched = append(matched, post)
		}
	}
	m.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() > matched[j].ID.String()
	})

	if offset >= len(matched) {
		return []*domain.Post{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

// CountByAuthor implements the PostStore interface
func (m *MockPostStore) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	if m.CountByAuthorFn != nil {
		return m.CountByAuthorFn(ctx, authorID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, post := range m.Posts {
		if post.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

// DeleteAllForAuthor implements the PostStore interface
func (m *MockPostStore) DeleteAllForAuthor(ctx context.Context, authorID uuid.UUID) error {
	if m.DeleteAllForAuthorFn != nil {
		return m.DeleteAllForAuthorFn(ctx, authorID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.Posts[:0]
	for _, post := range m.Posts {
		if post.AuthorID != authorID {
			kept = append(kept, post)
		}
	}
	m.Posts = kept
	return nil
}

// WithTx implements the PostStore interface. The mock has no transaction
// semantics; it returns itself.
func (m *MockPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return m
}
