package handler

import (
	"context"

	"github.com/ghost-console/ghost/internal/core/domain"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (string, *domain.User, error)
	authFn  func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	return s.authFn(ctx, token)
}

type stubMachineService struct {
	listVisibleFn func(ctx context.Context, caller *domain.User) ([]domain.Machine, error)
	listFn        func(ctx context.Context) ([]domain.Machine, error)
	wakeFn        func(ctx context.Context, caller *domain.User, name, mac string) (string, error)
	addFn         func(ctx context.Context, name, mac string) (*domain.Machine, error)
	deleteFn      func(ctx context.Context, mac string) error
}

func (s *stubMachineService) ListVisible(ctx context.Context, caller *domain.User) ([]domain.Machine, error) {
	return s.listVisibleFn(ctx, caller)
}

func (s *stubMachineService) List(ctx context.Context) ([]domain.Machine, error) {
	return s.listFn(ctx)
}

func (s *stubMachineService) Wake(ctx context.Context, caller *domain.User, name, mac string) (string, error) {
	return s.wakeFn(ctx, caller, name, mac)
}

func (s *stubMachineService) Add(ctx context.Context, name, mac string) (*domain.Machine, error) {
	return s.addFn(ctx, name, mac)
}

func (s *stubMachineService) Delete(ctx context.Context, mac string) error {
	return s.deleteFn(ctx, mac)
}

type stubUserService struct {
	listFn    func(ctx context.Context) ([]domain.User, error)
	addFn     func(ctx context.Context, username, password, role string) (*domain.User, error)
	deleteFn  func(ctx context.Context, caller *domain.User, username string) error
	setMACsFn func(ctx context.Context, username string, macs []string) (*domain.User, error)
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Add(ctx context.Context, username, password, role string) (*domain.User, error) {
	return s.addFn(ctx, username, password, role)
}

func (s *stubUserService) Delete(ctx context.Context, caller *domain.User, username string) error {
	return s.deleteFn(ctx, caller, username)
}

func (s *stubUserService) SetPermissions(ctx context.Context, username string, macs []string) (*domain.User, error) {
	return s.setMACsFn(ctx, username, macs)
}
