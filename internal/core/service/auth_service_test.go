package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ghost-console/ghost/internal/core/domain"
)

func seededStore(t *testing.T) *memStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return newMemStore(&domain.Config{
		Machines: []domain.Machine{},
		Users: []domain.User{
			{Username: "carol", Password: string(hash), Role: domain.RoleAdmin, AllowedMACs: []string{}},
			{Username: "bob", Password: "legacy-pass", Role: domain.RoleUser, AllowedMACs: []string{}},
		},
	})
}

func TestAuthService_Login_BcryptPassword(t *testing.T) {
	svc := NewAuthService(seededStore(t), "secret", time.Hour, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Subject != "carol" {
		t.Fatalf("expected subject carol, got %q", claims.Subject)
	}
}

func TestAuthService_Login_LegacyCleartextPassword(t *testing.T) {
	svc := NewAuthService(seededStore(t), "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "bob", "legacy-pass"); err != nil {
		t.Fatalf("legacy login failed: %v", err)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := NewAuthService(seededStore(t), "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "carol", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(seededStore(t), "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "nobody", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyStore(t *testing.T) {
	svc := NewAuthService(newMemStore(nil), "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "anyone", "anything"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_RoundTrip(t *testing.T) {
	svc := NewAuthService(seededStore(t), "secret", 7*24*time.Hour, zerolog.Nop())

	token, _, err := svc.Login(context.Background(), "bob", "legacy-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if user.Username != "bob" || user.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Authenticate_ExpiryWindow(t *testing.T) {
	svc := NewAuthService(seededStore(t), "secret", 7*24*time.Hour, zerolog.Nop())

	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	token, _, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(6*24*time.Hour + 23*time.Hour) }
	if _, err := svc.Authenticate(context.Background(), token); err != nil {
		t.Fatalf("token should still be valid at 6d23h: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(7*24*time.Hour + time.Hour) }
	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid at 7d1h, got %v", err)
	}
}

func TestAuthService_Authenticate_WrongSignature(t *testing.T) {
	svc := NewAuthService(seededStore(t), "secret", time.Hour, zerolog.Nop())

	other := NewAuthService(seededStore(t), "other-secret", time.Hour, zerolog.Nop())
	token, _, err := other.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_Authenticate_Malformed(t *testing.T) {
	svc := NewAuthService(seededStore(t), "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Authenticate(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_Authenticate_DeletedUser(t *testing.T) {
	store := seededStore(t)
	svc := NewAuthService(store, "secret", time.Hour, zerolog.Nop())

	token, _, err := svc.Login(context.Background(), "bob", "legacy-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	store.cfg.RemoveUser("bob")
	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for deleted user, got %v", err)
	}
}
