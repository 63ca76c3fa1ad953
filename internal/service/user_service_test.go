package service_test

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tobin/ripple-api/internal/domain"
	"github.com/tobin/ripple-api/internal/mocks"
	"github.com/tobin/ripple-api/internal/service"
	"github.com/tobin/ripple-api/internal/service/auth"
	"github.com/tobin/ripple-api/internal/store"
)

// newTestUserService wires a UserService over the in-memory mocks with
// the transaction seam short-circuited, so transactional paths run
// without a database.
func newTestUserService(
	userStore *mocks.MockUserStore,
	followStore *mocks.MockFollowStore,
	postStore *mocks.MockPostStore,
) *service.UserServiceImpl {
	svc := service.NewUserService(
		userStore,
		followStore,
		postStore,
		auth.NewBcryptHasher(bcrypt.MinCost),
		nil,
		slog.Default(),
	)
	svc.SetRunTx(func(ctx context.Context, fn store.TxFn) error {
		return fn(ctx, nil)
	})
	return svc
}

// seedUser inserts a user with a real bcrypt digest, the way the
// persistence layer would store one.
func seedUser(t *testing.T, userStore *mocks.MockUserStore, email, password string) *domain.User {
	t.Helper()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	digest, err := hasher.Hash(password)
	require.NoError(t, err)

	user := &domain.User{
		ID:             uuid.New(),
		Name:           "Seed User",
		Email:          domain.NormalizeEmail(email),
		HashedPassword: digest,
	}
	userStore.Users[user.Email] = user
	return user
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates user", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		svc := newTestUserService(userStore, mocks.NewMockFollowStore(), mocks.NewMockPostStore())

		user, err := svc.Register(context.Background(), "Alice", "Alice@Example.com", "password123")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Empty(t, user.Password, "plaintext must not survive registration")
		assert.NotEmpty(t, user.HashedPassword)
	})

	t.Run("rejects invalid input with all violations", func(t *testing.T) {
		t.Parallel()
		svc := newTestUserService(mocks.NewMockUserStore(), mocks.NewMockFollowStore(), mocks.NewMockPostStore())

		_, err := svc.Register(context.Background(), "", "bad-email", "123")
		require.Error(t, err)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Violations, 3)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		svc := newTestUserService(userStore, mocks.NewMockFollowStore(), mocks.NewMockPostStore())

		_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
		require.NoError(t, err)

		// Same address in a different case still collides.
		_, err = svc.Register(context.Background(), "Mallory", "ALICE@example.com", "password456")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		seeded := seedUser(t, userStore, "alice@example.com", "password123")
		svc := newTestUserService(userStore, mocks.NewMockFollowStore(), mocks.NewMockPostStore())

		user, err := svc.Authenticate(context.Background(), "alice@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, user.ID)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		seedUser(t, userStore, "alice@example.com", "password123")
		svc := newTestUserService(userStore, mocks.NewMockFollowStore(), mocks.NewMockPostStore())

		_, err := svc.Authenticate(context.Background(), "ALICE@Example.COM", "password123")
		assert.NoError(t, err)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		seedUser(t, userStore, "alice@example.com", "password123")
		svc := newTestUserService(userStore, mocks.NewMockFollowStore(), mocks.NewMockPostStore())

		_, errUnknown := svc.Authenticate(context.Background(), "nobody@example.com", "password123")
		_, errWrong := svc.Authenticate(context.Background(), "alice@example.com", "wrongpassword")

		assert.ErrorIs(t, errUnknown, auth.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, auth.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("malformed stored digest is surfaced, not treated as mismatch", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		user := seedUser(t, userStore, "alice@example.com", "password123")
		user.HashedPassword = "corrupted-digest"
		svc := newTestUserService(userStore, mocks.NewMockFollowStore(), mocks.NewMockPostStore())

		_, err := svc.Authenticate(context.Background(), "alice@example.com", "password123")
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrInvalidDigest)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestRememberAndAuthenticateByToken(t *testing.T) {
	t.Parallel()

	t.Run("issued token authenticates", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		seeded := seedUser(t, userStore, "alice@example.com", "password123")
		svc := newTestUserService(userStore, mocks.NewMockFollowStore(), mocks.NewMockPostStore())

		token, err := svc.Remember(context.Background(), seeded.ID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		// Only the digest is stored, never the plaintext.
		require.NotNil(t, seeded.RememberDigest)
		assert.NotEqual(t, token, *seeded.RememberDigest)

		user, err := svc.AuthenticateByToken(context.Background(), seeded.ID, token)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, user.ID)
	})

	t.Run("reissue invalidates the previous token", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		seeded := seedUser(t, userStore, "alice@example.com", "password123")
		svc := newTestUserService(userStore, mocks.NewMockFollowStore(), mocks.NewMockPostStore())

		first, err := svc.Remember(context.Background(), seeded.ID)
		require.NoError(t, err)
		second, err := svc.Remember(context.Background(), seeded.ID)
		require.NoError(t, err)
		require.NotEqual(t, first, second)

		_, err = svc.AuthenticateByToken(context.Background(), seeded.ID, first)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

		_, err = svc.AuthenticateByToken(context.Background(), seeded.ID, second)
		assert.NoError(t, err)
	})

	t.Run("no outstanding token", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		seeded := seedUser(t, userStore, "alice@example.com", "password123")
		svc := newTestUserService(userStore, mocks.NewMockFollowStore(), mocks.NewMockPostStore())

		_, err := svc.AuthenticateByToken(context.Background(), seeded.ID, "any-token")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		svc := newTestUserService(mocks.NewMockUserStore(), mocks.NewMockFollowStore(), mocks.NewMockPostStore())

		_, err := svc.AuthenticateByToken(context.Background(), uuid.New(), "any-token")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestForget(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	seeded := seedUser(t, userStore, "alice@example.com", "password123")
	svc := newTestUserService(userStore, mocks.NewMockFollowStore(), mocks.NewMockPostStore())

	token, err := svc.Remember(context.Background(), seeded.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Forget(context.Background(), seeded.ID))
	assert.Nil(t, seeded.RememberDigest)

	_, err = svc.AuthenticateByToken(context.Background(), seeded.ID, token)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	// Forget is idempotent at the service level.
	assert.NoError(t, svc.Forget(context.Background(), seeded.ID))
}

func TestUpdateEmail(t *testing.T) {
	t.Parallel()

	t.Run("normalizes and persists", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		seeded := seedUser(t, userStore, "alice@example.com", "password123")
		svc := newTestUserService(userStore, mocks.NewMockFollowStore(), mocks.NewMockPostStore())

		require.NoError(t, svc.UpdateEmail(context.Background(), seeded.ID, "NewAlice@Example.COM"))

		updated, err := svc.GetUser(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "newalice@example.com", updated.Email)
	})

	t.Run("rejects an email already in use", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		seeded := seedUser(t, userStore, "alice@example.com", "password123")
		seedUser(t, userStore, "bob@example.com", "password456")
		svc := newTestUserService(userStore, mocks.NewMockFollowStore(), mocks.NewMockPostStore())

		err := svc.UpdateEmail(context.Background(), seeded.ID, "bob@example.com")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})
}

func TestUpdatePassword(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	seeded := seedUser(t, userStore, "alice@example.com", "password123")
	svc := newTestUserService(userStore, mocks.NewMockFollowStore(), mocks.NewMockPostStore())

	require.NoError(t, svc.UpdatePassword(context.Background(), seeded.ID, "newpassword456"))

	// The mock replaces the digest when a plaintext is present.
	assert.Empty(t, seeded.Password)
	assert.Equal(t, "hashed:newpassword456", seeded.HashedPassword)
}

func TestDeactivate(t *testing.T) {
	t.Parallel()

	t.Run("removes user, posts, and follow edges", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		followStore := mocks.NewMockFollowStore()
		postStore := mocks.NewMockPostStore()
		svc := newTestUserService(userStore, followStore, postStore)

		seeded := seedUser(t, userStore, "alice@example.com", "password123")
		other := seedUser(t, userStore, "bob@example.com", "password456")

		post, err := domain.NewPost(seeded.ID, "soon to vanish")
		require.NoError(t, err)
		require.NoError(t, postStore.Create(context.Background(), post))

		edgeOut, err := domain.NewFollowEdge(seeded.ID, other.ID)
		require.NoError(t, err)
		require.NoError(t, followStore.Create(context.Background(), edgeOut))
		edgeIn, err := domain.NewFollowEdge(other.ID, seeded.ID)
		require.NoError(t, err)
		require.NoError(t, followStore.Create(context.Background(), edgeIn))

		require.NoError(t, svc.Deactivate(context.Background(), seeded.ID))

		_, err = svc.GetUser(context.Background(), seeded.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)

		posts, err := postStore.FindByAuthor(context.Background(), seeded.ID, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, posts)

		// Both directions of the graph are cleared.
		assert.Equal(t, 0, followStore.EdgeCount())
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		svc := newTestUserService(mocks.NewMockUserStore(), mocks.NewMockFollowStore(), mocks.NewMockPostStore())

		err := svc.Deactivate(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

// Guards the runTx seam: the production constructor must wire a real
// transaction runner.
func TestNewUserServiceWiresTransactionRunner(t *testing.T) {
	t.Parallel()

	svc := service.NewUserService(
		mocks.NewMockUserStore(),
		mocks.NewMockFollowStore(),
		mocks.NewMockPostStore(),
		auth.NewBcryptHasher(bcrypt.MinCost),
		(*sql.DB)(nil),
		slog.Default(),
	)
	assert.NotNil(t, svc.RunTx())
}
