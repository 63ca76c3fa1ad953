package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tobin/ripple-api/internal/domain"
	"github.com/tobin/ripple-api/internal/service/auth"
	"github.com/tobin/ripple-api/internal/store"
)

// UserService is the identity aggregate: it ties together a stable user
// identity, its credential state, and its graph membership. Credential
// work is delegated to the auth package, persistence to the stores.
type UserService interface {
	// Register creates a new user from name, email and plaintext
	// password. The email is normalized to lowercase before persistence.
	// Returns a domain.ValidationError enumerating every violated
	// constraint, or store.ErrEmailExists for a duplicate email.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Authenticate verifies the password for the account with the given
	// email. Unknown email and wrong password both yield
	// auth.ErrInvalidCredentials; callers cannot tell them apart.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// Remember issues a fresh opaque remember token for the user, stores
	// its digest, and returns the plaintext token. Any previously issued
	// token is invalidated by the overwrite. Transport of the token
	// (e.g. a cookie) is the caller's concern.
	Remember(ctx context.Context, userID uuid.UUID) (string, error)

	// AuthenticateByToken verifies a presented remember token against
	// the stored digest. Returns auth.ErrInvalidCredentials when no
	// token is outstanding or the token does not match.
	AuthenticateByToken(ctx context.Context, userID uuid.UUID, token string) (*domain.User, error)

	// Forget clears the stored remember-token digest, immediately
	// invalidating any outstanding token.
	Forget(ctx context.Context, userID uuid.UUID) error

	// GetUser retrieves a user by their ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// UpdateEmail changes the user's email address, re-normalizing and
	// re-validating it.
	UpdateEmail(ctx context.Context, userID uuid.UUID, newEmail string) error

	// UpdatePassword changes the user's password.
	UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error

	// Deactivate permanently removes the user, every follow edge with
	// the user at either endpoint, and every post they authored, in one
	// transaction.
	Deactivate(ctx context.Context, userID uuid.UUID) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore   store.UserStore
	followStore store.FollowStore
	postStore   store.PostStore
	hasher      *auth.BcryptHasher
	logger      *slog.Logger

	// runTx is a seam over store.RunInTransaction so unit tests can
	// execute transactional paths without a live database.
	runTx func(ctx context.Context, fn store.TxFn) error
}

// NewUserService creates a new UserService. The hasher is the credential
// codec used for remember tokens; password hashing itself lives inside
// the user store.
func NewUserService(
	userStore store.UserStore,
	followStore store.FollowStore,
	postStore store.PostStore,
	hasher *auth.BcryptHasher,
	db *sql.DB,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore:   userStore,
		followStore: followStore,
		postStore:   postStore,
		hasher:      hasher,
		logger:      logger.With(slog.String("component", "user_service")),
		runTx: func(ctx context.Context, fn store.TxFn) error {
			return store.RunInTransaction(ctx, db, fn)
		},
	}
}

var _ UserService = (*UserServiceImpl)(nil)

// Register creates a new user with the specified name, email and password.
func (s *UserServiceImpl) Register(
	ctx context.Context,
	name, email, password string,
) (*domain.User, error) {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		s.logger.Debug("user validation failed during registration",
			"error", err)
		return nil, err
	}

	err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register with existing email")
			return nil, err
		}
		s.logger.Error("failed to save user",
			"error", err,
			"user_id", user.ID)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered successfully",
		"user_id", user.ID)
	return user, nil
}

// Authenticate looks up the account by normalized email and verifies the
// password. The failure mode is deliberately uniform to prevent account
// enumeration.
func (s *UserServiceImpl) Authenticate(
	ctx context.Context,
	email, password string,
) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("authentication failed: unknown email")
			return nil, auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for authentication",
			"error", err)
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Debug("authentication failed: wrong password",
				"user_id", user.ID)
			return nil, auth.ErrInvalidCredentials
		}
		// A malformed stored digest is corruption, not a bad login.
		s.logger.Error("stored password digest is malformed",
			"error", err,
			"user_id", user.ID)
		return nil, err
	}

	return user, nil
}

// Remember issues a new remember token and persists only its digest.
func (s *UserServiceImpl) Remember(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := auth.NewRememberToken()
	if err != nil {
		s.logger.Error("failed to generate remember token",
			"error", err,
			"user_id", userID)
		return "", err
	}

	digest, err := s.hasher.Hash(token)
	if err != nil {
		s.logger.Error("failed to hash remember token",
			"error", err,
			"user_id", userID)
		return "", err
	}

	if err := s.userStore.UpdateRememberDigest(ctx, userID, &digest); err != nil {
		s.logger.Error("failed to store remember digest",
			"error", err,
			"user_id", userID)
		return "", fmt.Errorf("failed to store remember digest: %w", err)
	}

	s.logger.Info("remember token issued",
		"user_id", userID)
	return token, nil
}

// AuthenticateByToken verifies a presented remember token.
func (s *UserServiceImpl) AuthenticateByToken(
	ctx context.Context,
	userID uuid.UUID,
	token string,
) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.RememberDigest == nil {
		s.logger.Debug("no outstanding remember token",
			"user_id", userID)
		return nil, auth.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(*user.RememberDigest, token); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Debug("remember token did not match digest",
				"user_id", userID)
			return nil, auth.ErrInvalidCredentials
		}
		s.logger.Error("stored remember digest is malformed",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	return user, nil
}

// Forget clears the stored remember digest.
func (s *UserServiceImpl) Forget(ctx context.Context, userID uuid.UUID) error {
	if err := s.userStore.UpdateRememberDigest(ctx, userID, nil); err != nil {
		s.logger.Error("failed to clear remember digest",
			"error", err,
			"user_id", userID)
		return fmt.Errorf("failed to clear remember digest: %w", err)
	}

	s.logger.Info("remember token invalidated",
		"user_id", userID)
	return nil
}

// GetUser retrieves a user by their ID.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", userID)
		}
		return nil, err
	}
	return user, nil
}

// UpdateEmail updates a user's email address using the get-modify-put
// pattern inside a transaction.
func (s *UserServiceImpl) UpdateEmail(ctx context.Context, userID uuid.UUID, newEmail string) error {
	return s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to retrieve user for update: %w", err)
		}

		user.Email = newEmail

		if err := txStore.Update(ctx, user); err != nil {
			if errors.Is(err, store.ErrEmailExists) {
				s.logger.Debug("attempted to update to an existing email",
					"user_id", userID)
				return err
			}
			return fmt.Errorf("failed to update user email: %w", err)
		}

		s.logger.Info("user email updated",
			"user_id", userID)
		return nil
	})
}

// UpdatePassword updates a user's password. The store re-hashes the
// plaintext through the credential codec.
func (s *UserServiceImpl) UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	return s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to retrieve user for password update: %w", err)
		}

		user.Password = newPassword

		if err := txStore.Update(ctx, user); err != nil {
			return fmt.Errorf("failed to update user password: %w", err)
		}

		s.logger.Info("user password updated",
			"user_id", userID)
		return nil
	})
}

// Deactivate removes the user and fans out to dependent data: their
// posts, and every follow edge where they are either endpoint. The whole
// fan-out runs in a single transaction so no partial state survives.
func (s *UserServiceImpl) Deactivate(ctx context.Context, userID uuid.UUID) error {
	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.postStore.WithTx(tx).DeleteAllForAuthor(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete posts: %w", err)
		}
		if err := s.followStore.WithTx(tx).DeleteAllForUser(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete follow edges: %w", err)
		}
		if err := s.userStore.WithTx(tx).Delete(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("attempted to deactivate non-existent user",
				"user_id", userID)
			return err
		}
		s.logger.Error("failed to deactivate user",
			"error", err,
			"user_id", userID)
		return err
	}

	s.logger.Info("user deactivated",
		"user_id", userID)
	return nil
}
