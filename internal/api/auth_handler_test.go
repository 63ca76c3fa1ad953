package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobin/ripple-api/internal/api/shared"
	"github.com/tobin/ripple-api/internal/domain"
	"github.com/tobin/ripple-api/internal/mocks"
	"github.com/tobin/ripple-api/internal/service/auth"
	"github.com/tobin/ripple-api/internal/store"
)

// postJSON performs a request with a JSON body against a handler func.
func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

// withUser injects an authenticated user id the way the auth middleware
// would.
func withUser(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

func TestAuthHandlerRegister(t *testing.T) {
	t.Parallel()

	registered := &domain.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	t.Run("valid registration", func(t *testing.T) {
		t.Parallel()
		userService := &mocks.MockUserService{
			RegisterFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
				return registered, nil
			},
		}
		handler := NewAuthHandler(userService, &mocks.MockJWTService{Token: "test-token"})

		recorder := postJSON(t, handler.Register, "/api/auth/register", map[string]any{
			"name":     "Alice",
			"email":    "alice@example.com",
			"password": "password123",
		})

		require.Equal(t, http.StatusCreated, recorder.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, registered.ID, resp.UserID)
		assert.Equal(t, "test-token", resp.AccessToken)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		userService := &mocks.MockUserService{
			RegisterFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
				return nil, store.ErrEmailExists
			},
		}
		handler := NewAuthHandler(userService, &mocks.MockJWTService{Token: "test-token"})

		recorder := postJSON(t, handler.Register, "/api/auth/register", map[string]any{
			"name":     "Alice",
			"email":    "alice@example.com",
			"password": "password123",
		})
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("invalid payloads rejected before the service", func(t *testing.T) {
		t.Parallel()
		userService := &mocks.MockUserService{
			RegisterFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
				t.Error("service should not be called for invalid payloads")
				return nil, nil
			},
		}
		handler := NewAuthHandler(userService, &mocks.MockJWTService{Token: "test-token"})

		payloads := []map[string]any{
			{"email": "alice@example.com", "password": "password123"}, // missing name
			{"name": "Alice", "password": "password123"},              // missing email
			{"name": "Alice", "email": "not-an-email", "password": "password123"},
			{"name": "Alice", "email": "alice@example.com", "password": "short"},
		}
		for _, payload := range payloads {
			recorder := postJSON(t, handler.Register, "/api/auth/register", payload)
			assert.Equal(t, http.StatusBadRequest, recorder.Code, "payload: %v", payload)
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(&mocks.MockUserService{}, &mocks.MockJWTService{})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte("{not json")))
		recorder := httptest.NewRecorder()
		handler.Register(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Parallel()

	seeded := &domain.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		userService := &mocks.MockUserService{
			AuthenticateFn: func(ctx context.Context, email, password string) (*domain.User, error) {
				return seeded, nil
			},
		}
		handler := NewAuthHandler(userService, &mocks.MockJWTService{Token: "login-token"})

		recorder := postJSON(t, handler.Login, "/api/auth/login", map[string]any{
			"email":    "alice@example.com",
			"password": "password123",
		})

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, seeded.ID, resp.UserID)
		assert.Equal(t, "login-token", resp.AccessToken)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		t.Parallel()
		userService := &mocks.MockUserService{
			AuthenticateFn: func(ctx context.Context, email, password string) (*domain.User, error) {
				return nil, auth.ErrInvalidCredentials
			},
		}
		handler := NewAuthHandler(userService, &mocks.MockJWTService{Token: "unused"})

		recorder := postJSON(t, handler.Login, "/api/auth/login", map[string]any{
			"email":    "alice@example.com",
			"password": "wrongpassword",
		})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestAuthHandlerTokenLogin(t *testing.T) {
	t.Parallel()

	seeded := &domain.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	t.Run("valid remember token", func(t *testing.T) {
		t.Parallel()
		userService := &mocks.MockUserService{
			AuthenticateByTokenFn: func(ctx context.Context, userID uuid.UUID, token string) (*domain.User, error) {
				assert.Equal(t, seeded.ID, userID)
				assert.Equal(t, "remember-me", token)
				return seeded, nil
			},
		}
		handler := NewAuthHandler(userService, &mocks.MockJWTService{Token: "fresh-token"})

		recorder := postJSON(t, handler.TokenLogin, "/api/auth/token", map[string]any{
			"user_id":        seeded.ID,
			"remember_token": "remember-me",
		})
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("invalid remember token", func(t *testing.T) {
		t.Parallel()
		userService := &mocks.MockUserService{
			AuthenticateByTokenFn: func(ctx context.Context, userID uuid.UUID, token string) (*domain.User, error) {
				return nil, auth.ErrInvalidCredentials
			},
		}
		handler := NewAuthHandler(userService, &mocks.MockJWTService{Token: "unused"})

		recorder := postJSON(t, handler.TokenLogin, "/api/auth/token", map[string]any{
			"user_id":        uuid.New(),
			"remember_token": "stale",
		})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestAuthHandlerRememberAndForget(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("remember issues a token", func(t *testing.T) {
		t.Parallel()
		userService := &mocks.MockUserService{
			RememberFn: func(ctx context.Context, id uuid.UUID) (string, error) {
				assert.Equal(t, userID, id)
				return "opaque-remember-token", nil
			},
		}
		handler := NewAuthHandler(userService, &mocks.MockJWTService{})

		req := withUser(httptest.NewRequest(http.MethodPost, "/api/auth/remember", nil), userID)
		recorder := httptest.NewRecorder()
		handler.Remember(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp RememberResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "opaque-remember-token", resp.RememberToken)
	})

	t.Run("forget clears the token", func(t *testing.T) {
		t.Parallel()
		forgotten := false
		userService := &mocks.MockUserService{
			ForgetFn: func(ctx context.Context, id uuid.UUID) error {
				forgotten = true
				return nil
			},
		}
		handler := NewAuthHandler(userService, &mocks.MockJWTService{})

		req := withUser(httptest.NewRequest(http.MethodDelete, "/api/auth/remember", nil), userID)
		recorder := httptest.NewRecorder()
		handler.Forget(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.True(t, forgotten)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(&mocks.MockUserService{}, &mocks.MockJWTService{})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/remember", nil)
		recorder := httptest.NewRecorder()
		handler.Remember(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
