// Package store is the durable key-value gateway. Each logical record is a
// JSON document in its own file under the state directory, written
// atomically. A missing or unreadable record is reported as absent so the
// caller can fall back to defaults.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"renoplan/internal/domain"
)

// Record keys for the four persisted records.
const (
	KeyCompletedTasks = "completed-tasks"
	KeyActualCosts    = "actual-costs"
	KeySelectedPhase  = "selected-phase"
	KeyCustomTasks    = "custom-tasks"
)

// Store persists JSON records under a single directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. The directory is created on first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the state directory.
func (s *Store) Dir() string {
	return s.dir
}

// Load reads a record into v. Returns false with a nil error when the
// record does not exist.
func (s *Store) Load(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &domain.StoreError{Op: "load", Key: key, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, &domain.StoreError{Op: "load", Key: key, Err: err}
	}
	return true, nil
}

// Save atomically writes a record: marshal, write to a temp file, rename.
func (s *Store) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &domain.StoreError{Op: "save", Key: key, Err: err}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &domain.StoreError{Op: "save", Key: key, Err: err}
	}

	path := s.path(key)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return &domain.StoreError{Op: "save", Key: key, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &domain.StoreError{Op: "save", Key: key, Err: err}
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
