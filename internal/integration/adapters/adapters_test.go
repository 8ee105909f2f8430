// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	t.Run("hash and verify round trip", func(t *testing.T) {
		hash, err := service.HashPassword("supersecret")
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		if hash == "supersecret" {
			t.Error("hash must not equal the plain text password")
		}
		if err := service.VerifyPassword(hash, "supersecret"); err != nil {
			t.Errorf("expected the password to verify: %v", err)
		}
		if err := service.VerifyPassword(hash, "wrong-password"); err == nil {
			t.Error("expected verification to fail for a wrong password")
		}
	})

	t.Run("strength validation", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("short"); err == nil {
			t.Error("expected a 5-character password to be rejected")
		}
		if err := service.ValidatePasswordStrength("12345678"); err != nil {
			t.Errorf("expected an 8-character password to pass: %v", err)
		}
	})
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService("test-secret", 24*time.Hour)

	t.Run("generate and validate round trip", func(t *testing.T) {
		token, err := service.GenerateToken(ctx, 42, "ana@example.com")
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		if strings.Count(token, ".") != 2 {
			t.Errorf("expected a JWT, got %q", token)
		}

		claims, err := service.ValidateToken(ctx, token)
		if err != nil {
			t.Fatalf("failed to validate token: %v", err)
		}
		if claims.UserID != 42 {
			t.Errorf("expected user id 42, got %d", claims.UserID)
		}
		if claims.Email != "ana@example.com" {
			t.Errorf("expected email ana@example.com, got %q", claims.Email)
		}
		if time.Until(claims.ExpiresAt) > 24*time.Hour {
			t.Error("expiry further out than the configured window")
		}
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		other := NewTokenService("other-secret", 24*time.Hour)
		token, err := other.GenerateToken(ctx, 42, "ana@example.com")
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		if _, err := service.ValidateToken(ctx, token); err == nil {
			t.Error("expected validation to fail")
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := NewTokenService("test-secret", -time.Minute)
		token, err := expired.GenerateToken(ctx, 42, "ana@example.com")
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		if _, err := service.ValidateToken(ctx, token); err == nil {
			t.Error("expected validation to fail for an expired token")
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := service.ValidateToken(ctx, "not-a-token"); err == nil {
			t.Error("expected validation to fail")
		}
	})
}
