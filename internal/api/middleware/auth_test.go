package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobin/ripple-api/internal/mocks"
	"github.com/tobin/ripple-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("valid token reaches the handler with the user id", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: userID},
		}
		mw := NewAuthMiddleware(jwtService)

		var seenID uuid.UUID
		var seenOK bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID, seenOK = GetUserID(r)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer some.valid.token")
		recorder := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, seenOK)
		assert.Equal(t, userID, seenID)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()
		mw := NewAuthMiddleware(&mocks.MockJWTService{})

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not be reached without credentials")
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		recorder := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		t.Parallel()
		mw := NewAuthMiddleware(&mocks.MockJWTService{})

		for _, header := range []string{"Bearer", "Basic dXNlcjpwYXNz", "Bearer too many parts"} {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", header)
			recorder := httptest.NewRecorder()
			mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Errorf("handler must not be reached for header %q", header)
			})).ServeHTTP(recorder, req)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code, "header: %q", header)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}
		mw := NewAuthMiddleware(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer expired.token.here")
		recorder := httptest.NewRecorder()
		mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not be reached with an expired token")
		})).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Token expired")
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
		mw := NewAuthMiddleware(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tampered.token.here")
		recorder := httptest.NewRecorder()
		mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not be reached with an invalid token")
		})).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid token")
	})
}
