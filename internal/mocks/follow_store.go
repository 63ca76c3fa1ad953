package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/tobin/ripple-api/internal/domain"
	"github.com/tobin/ripple-api/internal/store"
)

// edgeKey identifies a follow edge by its endpoints.
type edgeKey struct {
	follower uuid.UUID
	followed uuid.UUID
}

// MockFollowStore implements store.FollowStore for testing.
// Function fields override individual methods; otherwise an in-memory
// edge set backs a working default implementation with the same error
// semantics as the PostgreSQL store.
type MockFollowStore struct {
	CreateFn           func(ctx context.Context, edge *domain.FollowEdge) error
	DeleteFn           func(ctx context.Context, followerID, followedID uuid.UUID) error
	ExistsFn           func(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	FollowedIDsFn      func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	FollowerIDsFn      func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	DeleteAllForUserFn func(ctx context.Context, userID uuid.UUID) error

	mu    sync.Mutex
	edges map[edgeKey]*domain.FollowEdge
}

// NewMockFollowStore creates a new mock store with initialized defaults.
func NewMockFollowStore() *MockFollowStore {
	return &MockFollowStore{
		edges: make(map[edgeKey]*domain.FollowEdge),
	}
}

var _ store.FollowStore = (*MockFollowStore)(nil)

// Create implements the FollowStore interface
func (m *MockFollowStore) Create(ctx context.Context, edge *domain.FollowEdge) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, edge)
	}

	if err := edge.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := edgeKey{follower: edge.FollowerID, followed: edge.FollowedID}
	if _, exists := m.edges[key]; exists {
		return store.ErrAlreadyFollowing
	}
	m.edges[key] = edge
	return nil
}

// Delete implements the FollowStore interface
func (m *MockFollowStore) Delete(ctx context.Context, followerID, followedID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, followerID, followedID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := edgeKey{follower: followerID, followed: followedID}
	if _, exists := m.edges[key]; !exists {
		return store.ErrNotFollowing
	}
	delete(m.edges, key)
	return nil
}

// Exists implements the FollowStore interface
func (m *MockFollowStore) Exists(
	ctx context.Context,
	followerID, followedID uuid.UUID,
) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, followerID, followedID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	_, exists := m.edges[edgeKey{follower: followerID, followed: followedID}]
	return exists, nil
}

// FollowedIDs implements the FollowStore interface
func (m *MockFollowStore) FollowedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if m.FollowedIDsFn != nil {
		return m.FollowedIDsFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]uuid.UUID, 0)
	for key := range m.edges {
		if key.follower == userID {
			ids = append(ids, key.followed)
		}
	}
	return ids, nil
}

// FollowerIDs implements the FollowStore interface
func (m *MockFollowStore) FollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if m.FollowerIDsFn != nil {
		return m.FollowerIDsFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]uuid.UUID, 0)
	for key := range m.edges {
		if key.followed == userID {
			ids = append(ids, key.follower)
		}
	}
	return ids, nil
}

// DeleteAllForUser implements the FollowStore interface
func (m *MockFollowStore) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteAllForUserFn != nil {
		return m.DeleteAllForUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.edges {
		if key.follower == userID || key.followed == userID {
			delete(m.edges, key)
		}
	}
	return nil
}

// WithTx implements the FollowStore interface. The mock has no
// transaction semantics; it returns itself.
func (m *MockFollowStore) WithTx(tx *sql.Tx) store.FollowStore {
	return m
}

// EdgeCount returns the number of edges currently held, for assertions.
func (m *MockFollowStore) EdgeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.edges)
}
