// Package kvstore is the persistence adapter: string keys mapped to JSON
// values, backed by a single document on disk. Stored state is user
// convenience, not truth, so reads never fail hard — missing files and
// corrupt payloads both read back as absent.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	sonic "github.com/bytedance/sonic"
	"github.com/charmbracelet/log"
)

const defaultStatePath = "~/.config/gameday/state.json"

// DefaultPath returns the default on-disk location for persisted state.
func DefaultPath() string {
	return defaultStatePath
}

// Store is a file-backed key/value store of JSON documents.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]json.RawMessage
}

// Open loads the store at path (empty uses the default location). A missing
// or unreadable file starts the store empty; a corrupt file is discarded.
func Open(path string) *Store {
	s := &Store{values: make(map[string]json.RawMessage)}

	resolved, err := resolvePath(path)
	if err != nil {
		log.Warn("state path unusable, persistence disabled", "path", path, "err", err)
		return s
	}
	s.path = resolved

	raw, err := os.ReadFile(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn("read persisted state failed, starting empty", "path", resolved, "err", err)
		}
		return s
	}
	if err := sonic.Unmarshal(raw, &s.values); err != nil {
		log.Warn("persisted state corrupt, starting empty", "path", resolved, "err", err)
		s.values = make(map[string]json.RawMessage)
	}
	return s
}

// Get decodes the value stored under key into dest. It returns false when the
// key is absent or its value does not decode into dest.
func (s *Store) Get(key string, dest any) bool {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	if err := sonic.Unmarshal(raw, dest); err != nil {
		log.Warn("persisted value corrupt, treating as absent", "key", key, "err", err)
		return false
	}
	return true
}

// Set stores value under key and writes the document to disk immediately, so
// a completed user action survives process exit.
func (s *Store) Set(key string, value any) error {
	raw, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = raw
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	if s.path == "" {
		return nil
	}
	doc, err := sonic.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(s.path, doc, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultStatePath
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
