package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the validated claim set carried by an access token.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// JWTService issues and validates the short-lived access tokens used by
// the HTTP layer. Long-lived sessions use opaque remember tokens instead;
// see NewRememberToken and UserService.Remember.
type JWTService interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken parses and verifies a token string, returning its
	// claims. Returns ErrExpiredToken for expired tokens and
	// ErrInvalidToken for any other verification failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
