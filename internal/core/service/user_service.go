package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ghost-console/ghost/internal/core/domain"
	"github.com/ghost-console/ghost/internal/core/ports"
)

// UserService implements admin management of accounts and permissions.
type UserService struct {
	store  ports.ConfigStore
	logger zerolog.Logger
}

func NewUserService(store ports.ConfigStore, logger zerolog.Logger) *UserService {
	return &UserService{store: store, logger: logger}
}

// List returns every account in document order.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]domain.User(nil), cfg.Users...), nil
}

// Add creates an account. The allowed-MAC set always starts empty no
// matter what the request carried; permissions are granted explicitly
// afterwards via SetPermissions.
func (s *UserService) Add(ctx context.Context, username, password, role string) (*domain.User, error) {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.FindUser(username) != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		Username:    username,
		Password:    string(hash),
		Role:        role,
		AllowedMACs: []string{},
	}
	cfg.Users = append(cfg.Users, user)
	if err := s.store.Save(ctx, cfg); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("role", role).Msg("user added")
	return &user, nil
}

// Delete removes an account. Self-deletion is rejected so an admin
// cannot lock themselves out. Note that deleting the last remaining
// admin through another admin account is still possible.
func (s *UserService) Delete(ctx context.Context, caller *domain.User, username string) error {
	if caller.Username == username {
		return domain.ErrSelfDeletion
	}

	cfg, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if !cfg.RemoveUser(username) {
		return domain.ErrUserNotFound
	}
	if err := s.store.Save(ctx, cfg); err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Str("deleted_by", caller.Username).Msg("user deleted")
	return nil
}

// SetPermissions replaces the user's entire allowed-MAC set. MACs that
// reference no registered machine are stored without complaint; pruning
// only happens when a machine is deleted.
func (s *UserService) SetPermissions(ctx context.Context, username string, macs []string) (*domain.User, error) {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	user := cfg.FindUser(username)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if macs == nil {
		macs = []string{}
	}
	user.AllowedMACs = macs

	if err := s.store.Save(ctx, cfg); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Int("allowed_macs", len(macs)).Msg("permissions replaced")
	out := *user
	return &out, nil
}
