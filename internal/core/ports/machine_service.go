package ports

import (
	"context"

	"github.com/ghost-console/ghost/internal/core/domain"
)

// MachineService covers machine visibility, waking and admin CRUD.
type MachineService interface {
	// ListVisible returns the machines the caller may see, in document order.
	ListVisible(ctx context.Context, caller *domain.User) ([]domain.Machine, error)
	// List returns every registered machine (admin management view).
	List(ctx context.Context) ([]domain.Machine, error)
	// Wake sends a magic packet to the target after a policy check and
	// returns a human-readable confirmation message.
	Wake(ctx context.Context, caller *domain.User, name, mac string) (string, error)
	// Add registers a machine; a duplicate MAC fails with ErrMachineExists.
	Add(ctx context.Context, name, mac string) (*domain.Machine, error)
	// Delete removes a machine and prunes its MAC from every user's
	// allowed set in the same persisted update.
	Delete(ctx context.Context, mac string) error
}
