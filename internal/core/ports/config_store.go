package ports

import (
	"context"

	"github.com/ghost-console/ghost/internal/core/domain"
)

// ConfigStore persists the single configuration document. Load reflects
// the stored state as of the call (no caching); Save rewrites the whole
// document. Mutating callers must Load, mutate and Save within the same
// request.
type ConfigStore interface {
	// Load returns the stored configuration, or an empty one when no
	// document exists yet. A document that does not parse fails with an
	// error wrapping domain.ErrConfigCorrupt.
	Load(ctx context.Context) (*domain.Config, error)
	// Save replaces the stored document with cfg.
	Save(ctx context.Context, cfg *domain.Config) error
}
