package ports

import (
	"context"

	"github.com/ghost-console/ghost/internal/core/domain"
)

// UserService covers admin management of accounts and permissions.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	// Add creates an account with an empty allowed-MAC set. The password
	// is stored bcrypt-hashed.
	Add(ctx context.Context, username, password, role string) (*domain.User, error)
	// Delete removes an account. Callers cannot delete themselves.
	Delete(ctx context.Context, caller *domain.User, username string) error
	// SetPermissions replaces the user's entire allowed-MAC set. MACs that
	// reference no registered machine are accepted as-is.
	SetPermissions(ctx context.Context, username string, macs []string) (*domain.User, error)
}
