// Package store persists the console configuration as a single JSON
// document on disk, rewritten wholesale on every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ghost-console/ghost/internal/api/metrics"
	"github.com/ghost-console/ghost/internal/core/domain"
)

// FileStore reads and writes the config document at a fixed path. A
// mutex serializes access within the process; concurrent writers from
// other processes still race with last-writer-wins.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the stored configuration. A missing file yields an empty
// config without creating anything on disk; unparseable bytes fail with
// domain.ErrConfigCorrupt.
func (s *FileStore) Load(_ context.Context) (*domain.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() (*domain.Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewConfig(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", s.path, err)
	}

	cfg := domain.NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigCorrupt, s.path, err)
	}
	return cfg, nil
}

// Save replaces the document atomically: the new content is written to a
// temporary file in the same directory and renamed over the target.
func (s *FileStore) Save(_ context.Context, cfg *domain.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp config: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace config %s: %w", s.path, err)
	}

	metrics.ConfigSavesTotal.Inc()
	return nil
}
