package service

import (
	"context"
	"encoding/json"

	"github.com/ghost-console/ghost/internal/core/domain"
)

// memStore is an in-memory ConfigStore. Load and Save deep-copy the
// document so tests observe the same value semantics as the file store.
type memStore struct {
	cfg     *domain.Config
	loadErr error
	saveErr error
	saves   int
}

func newMemStore(cfg *domain.Config) *memStore {
	if cfg == nil {
		cfg = domain.NewConfig()
	}
	return &memStore{cfg: cfg}
}

func (m *memStore) Load(_ context.Context) (*domain.Config, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return cloneConfig(m.cfg), nil
}

func (m *memStore) Save(_ context.Context, cfg *domain.Config) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.cfg = cloneConfig(cfg)
	m.saves++
	return nil
}

func cloneConfig(cfg *domain.Config) *domain.Config {
	data, err := json.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	out := domain.NewConfig()
	if err := json.Unmarshal(data, out); err != nil {
		panic(err)
	}
	return out
}

// stubSender records wake calls and optionally fails.
type stubSender struct {
	calls []string
	err   error
}

func (s *stubSender) Wake(_ context.Context, mac string) error {
	s.calls = append(s.calls, mac)
	return s.err
}
