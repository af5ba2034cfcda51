package theme

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Persisted values for the dark-mode flag.
const (
	ValueEnabled  = "enabled"
	ValueDisabled = "disabled"
)

// Store persists the dark-mode preference across restarts. The on-disk
// format is the literal string "enabled" or "disabled".
type Store struct {
	mu      sync.Mutex
	path    string
	enabled bool
}

// NewStore reads the persisted preference. A missing file means disabled.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read theme preference: %w", err)
	}

	s.enabled = strings.TrimSpace(string(data)) == ValueEnabled
	return s, nil
}

// Enabled reports whether dark mode is on.
func (s *Store) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Toggle flips the flag and persists the new value. On a write failure the
// in-memory state is left unchanged so the visual state and the persisted
// value never disagree.
func (s *Store) Toggle() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := !s.enabled
	if err := os.WriteFile(s.path, []byte(Value(next)), 0o644); err != nil {
		return s.enabled, fmt.Errorf("failed to persist theme preference: %w", err)
	}

	s.enabled = next
	return next, nil
}

// Value maps the flag to its persisted representation.
func Value(enabled bool) string {
	if enabled {
		return ValueEnabled
	}
	return ValueDisabled
}
