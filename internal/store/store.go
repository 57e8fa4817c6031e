// Package store is the durable local persistence layer: one JSON file per
// collection key under a data directory, the role localStorage played in the
// original client.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Storage keys, one per top-level collection. The version suffix is the only
// migration mechanism: a renamed key reads as absent.
const (
	KeyExercises   = "exercises_v3"
	KeyWorkouts    = "workouts_v3"
	KeyTemplates   = "templates_v3"
	KeyPreferences = "preferences_v1"
	KeyAiSettings  = "ai_settings"
	KeyTheme       = "theme"
)

// Store persists JSON-encoded collection snapshots under a data directory.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the snapshot for key into v. A missing or malformed file is not
// an error: v is left untouched and false is returned, so the caller's
// default stands. This is the contract the original relied on implicitly.
func (s *Store) Load(key string, v any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("store read failed, using default", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("store data malformed, using default", "key", key, "error", err)
		return false
	}
	return true
}

// Save writes the full snapshot for key atomically (temp file + rename).
func (s *Store) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
