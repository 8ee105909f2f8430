// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the validated claims of an access token.
type TokenClaims struct {
	UserID    int64
	Email     string
	ExpiresAt time.Time
}

// TokenService defines access token issuance and validation.
type TokenService interface {
	// GenerateToken issues a signed access token for the user.
	GenerateToken(ctx context.Context, userID int64, email string) (string, error)

	// ValidateToken validates an access token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}
