package util

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/langhub/Language_Hub_BackEnd/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       uuid.New(),
		FullName: "Alice Example",
		Email:    "alice@example.com",
		Role:     domain.RoleUser,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("access-secret", "refresh-secret", 30*time.Minute, 7*24*time.Hour)
	user := testUser()

	token, err := manager.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token to be non-empty")
	}

	claims, err := manager.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken returned error: %v", err)
	}
	if claims.Subject != user.ID.String() {
		t.Fatalf("expected subject %s, got %s", user.ID, claims.Subject)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("expected role %s, got %s", domain.RoleUser, claims.Role)
	}
	if claims.Email != user.Email {
		t.Fatalf("expected email %s, got %s", user.Email, claims.Email)
	}
	if claims.FullName != user.FullName {
		t.Fatalf("expected full name %s, got %s", user.FullName, claims.FullName)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("access-secret", "refresh-secret", 30*time.Minute, 7*24*time.Hour)
	user := testUser()

	token, err := manager.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("GenerateRefreshToken returned error: %v", err)
	}

	id, err := manager.ParseRefreshToken(token)
	if err != nil {
		t.Fatalf("ParseRefreshToken returned error: %v", err)
	}
	if id != user.ID {
		t.Fatalf("expected principal %s, got %s", user.ID, id)
	}
}

func TestParseExpiredAccessToken(t *testing.T) {
	manager := NewTokenManager("access-secret", "refresh-secret", -time.Minute, 7*24*time.Hour)

	token, err := manager.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	if _, err := manager.ParseAccessToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenSecretsAreIndependent(t *testing.T) {
	manager := NewTokenManager("access-secret", "refresh-secret", 30*time.Minute, 7*24*time.Hour)
	user := testUser()

	refresh, err := manager.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("GenerateRefreshToken returned error: %v", err)
	}
	if _, err := manager.ParseAccessToken(refresh); err == nil {
		t.Fatalf("expected refresh token to fail access verification")
	}

	access, err := manager.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}
	if _, err := manager.ParseRefreshToken(access); err == nil {
		t.Fatalf("expected access token to fail refresh verification")
	}
}

func TestParseGarbageToken(t *testing.T) {
	manager := NewTokenManager("access-secret", "refresh-secret", 30*time.Minute, 7*24*time.Hour)
	if _, err := manager.ParseAccessToken("not.a.token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
