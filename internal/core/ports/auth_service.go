package ports

import (
	"context"

	"github.com/ghost-console/ghost/internal/core/domain"
)

// AuthService issues and validates session tokens.
type AuthService interface {
	// Login checks the credentials against the store and returns a signed
	// session token plus the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Authenticate verifies a token string and re-resolves its subject
	// against the live store, so deleted users are rejected mid-session.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
