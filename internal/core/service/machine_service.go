package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ghost-console/ghost/internal/api/metrics"
	"github.com/ghost-console/ghost/internal/core/domain"
	"github.com/ghost-console/ghost/internal/core/ports"
)

// MachineService implements machine listing, waking and admin CRUD.
type MachineService struct {
	store  ports.ConfigStore
	sender ports.PacketSender
	logger zerolog.Logger
}

func NewMachineService(store ports.ConfigStore, sender ports.PacketSender, logger zerolog.Logger) *MachineService {
	return &MachineService{store: store, sender: sender, logger: logger}
}

// ListVisible returns the machines the caller may see: everything for
// admins, only allowed MACs for regular users.
func (s *MachineService) ListVisible(ctx context.Context, caller *domain.User) ([]domain.Machine, error) {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return cfg.VisibleMachines(caller), nil
}

// List returns every registered machine.
func (s *MachineService) List(ctx context.Context) ([]domain.Machine, error) {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]domain.Machine(nil), cfg.Machines...), nil
}

// Wake checks the caller's permission on the target MAC and dispatches a
// magic packet. The sender is never invoked on a forbidden request.
func (s *MachineService) Wake(ctx context.Context, caller *domain.User, name, mac string) (string, error) {
	if !caller.MayWake(mac) {
		metrics.WakeForbiddenTotal.Inc()
		return "", domain.ErrForbidden
	}

	s.logger.Info().Str("username", caller.Username).Str("mac", mac).Msg("sending magic packet")
	if err := s.sender.Wake(ctx, mac); err != nil {
		metrics.WakePacketsTotal.WithLabelValues("send_error").Inc()
		return "", fmt.Errorf("%w: %v", domain.ErrWakeFailed, err)
	}

	metrics.WakePacketsTotal.WithLabelValues("sent").Inc()
	return fmt.Sprintf("Magic packet sent to %s", name), nil
}

// Add registers a new machine. The MAC must be unique.
func (s *MachineService) Add(ctx context.Context, name, mac string) (*domain.Machine, error) {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.FindMachine(mac) != nil {
		return nil, domain.ErrMachineExists
	}

	machine := domain.Machine{Name: name, MAC: mac}
	cfg.Machines = append(cfg.Machines, machine)
	if err := s.store.Save(ctx, cfg); err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", name).Str("mac", mac).Msg("machine added")
	return &machine, nil
}

// Delete removes a machine and prunes its MAC from every user's allowed
// set within the same persisted update.
func (s *MachineService) Delete(ctx context.Context, mac string) error {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if !cfg.RemoveMachine(mac) {
		return domain.ErrMachineNotFound
	}
	if err := s.store.Save(ctx, cfg); err != nil {
		return err
	}

	s.logger.Info().Str("mac", mac).Msg("machine deleted")
	return nil
}
