package jwt

import (
	"testing"
	"time"
)

func newTestManager() *Manager {
	return NewManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("u-alice", "alice@test.local")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UID != "u-alice" || claims.Email != "alice@test.local" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager("different-secret", "refresh-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateAccessToken("u-alice", "alice@test.local")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("expected validation to fail with wrong secret")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("u-bob")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	uid, err := m.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if uid != "u-bob" {
		t.Fatalf("expected u-bob, got %s", uid)
	}
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken("u-alice", "alice@test.local")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := m.ValidateAccessToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestHashToken(t *testing.T) {
	m := newTestManager()

	h1, err := m.HashToken("some-token")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, _ := m.HashToken("some-token")
	if h1 != h2 {
		t.Fatal("hash must be deterministic")
	}
	if _, err := m.HashToken(""); err == nil {
		t.Fatal("empty token must error")
	}
}
