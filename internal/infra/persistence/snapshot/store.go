// Package snapshot persists the whole application state as one JSON document.
// Every mutation rewrites the file through a temp-file rename, so the snapshot
// on disk is always a complete, consistent image. A missing or unreadable
// snapshot starts the service with empty state rather than failing boot.
package snapshot

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"comanda/internal/domain/entity"
	"comanda/internal/errors"
)

type state struct {
	Drafts []*entity.OrderDraft `json:"drafts"`
	Orders []*entity.Order      `json:"orders"`
}

// Store owns the in-memory state and its on-disk snapshot. All access goes
// through the repositories built on top of it.
type Store struct {
	mu     sync.RWMutex
	path   string
	logger *slog.Logger
	state  state
}

// New opens the store, loading the snapshot at path if one exists.
// An empty path keeps the state purely in memory.
func New(path string, logger *slog.Logger) *Store {
	s := &Store{path: path, logger: logger}
	s.load()

	return s
}

func (s *Store) load() {
	if s.path == "" {
		return
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("snapshot unreadable, starting empty", slog.String("path", s.path), slog.Any("error", err))
		}

		return
	}

	var loaded state
	if err := json.Unmarshal(raw, &loaded); err != nil {
		s.logger.Warn("snapshot corrupt, starting empty", slog.String("path", s.path), slog.Any("error", err))

		return
	}

	s.state = loaded
}

// persist writes the current state to disk. Callers must hold the write lock.
func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}

	raw, err := json.MarshalIndent(&s.state, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal snapshot")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "create snapshot dir")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrap(err, "write snapshot")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "replace snapshot")
	}

	return nil
}
