// Package filestore persists entity collections as pretty-printed JSON
// arrays, one file per collection. It backs the notifications and workers
// collections and feeds the one-time JSON migration.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Collection file names.
const (
	ServicesFile      = "services.json"
	StaffFile         = "staff.json"
	BookingsFile      = "bookings.json"
	TasksFile         = "tasks.json"
	NotificationsFile = "notifications.json"
	WorkersFile       = "workers.json"
)

// Store reads and writes JSON collection files under a data directory.
// Read-modify-write cycles must hold the store mutex; this protects
// concurrent requests within one process only.
type Store struct {
	dir    string
	mu     sync.Mutex
	logger zerolog.Logger
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string, logger zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{
		dir:    dir,
		logger: logger.With().Str("component", "filestore").Logger(),
	}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Load decodes the named collection into out. A missing file yields the
// empty collection, matching the behavior of the stores this replaces.
func (s *Store) Load(name string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(name, out)
}

func (s *Store) load(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Save writes the collection as a pretty-printed JSON array.
func (s *Store) Save(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(name, v)
}

func (s *Store) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Update runs fn over the decoded collection and writes the result back,
// all under the store mutex.
func Update[T any](s *Store, name string, fn func([]T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []T
	if err := s.load(name, &items); err != nil {
		return err
	}
	updated, err := fn(items)
	if err != nil {
		return err
	}
	return s.save(name, updated)
}
