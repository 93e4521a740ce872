// Package state is the explicit client-state store: bookmarks and usage
// counters with an init/load/save lifecycle. The store is passed by
// reference to whatever needs it; there are no ambient singletons, and
// persistence sits behind a small backend interface so it stays swappable
// in tests.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
)

// Backend persists the raw key-value state.
type Backend interface {
	Load() (map[string]string, error)
	Save(values map[string]string) error
}

// MemoryBackend keeps state in process; the zero value is ready to use.
type MemoryBackend struct {
	values map[string]string
}

func (m *MemoryBackend) Load() (map[string]string, error) {
	return m.values, nil
}

func (m *MemoryBackend) Save(values map[string]string) error {
	m.values = values
	return nil
}

// FileBackend persists state as a JSON file.
type FileBackend struct {
	Path string
}

func (f *FileBackend) Load() (map[string]string, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	return values, nil
}

func (f *FileBackend) Save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// Store holds client state. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	values  map[string]string
	backend Backend
}

// Open loads existing state from the backend.
func Open(backend Backend) (*Store, error) {
	values, err := backend.Load()
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = make(map[string]string)
	}
	return &Store{values: values, backend: backend}, nil
}

// Get returns the value for key, or "".
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Set stores a value and persists the state.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.backend.Save(s.values)
}

// Increment bumps a numeric counter and returns its new value.
func (s *Store) Increment(key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, _ := strconv.Atoi(s.values[key])
	n++
	s.values[key] = strconv.Itoa(n)
	return n, s.backend.Save(s.values)
}

const bookmarkPrefix = "bookmark:"

// ToggleBookmark flips an item's bookmarked state and reports whether it
// is now bookmarked.
func (s *Store) ToggleBookmark(itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := bookmarkPrefix + itemID
	if _, ok := s.values[key]; ok {
		delete(s.values, key)
		return false, s.backend.Save(s.values)
	}
	s.values[key] = "1"
	return true, s.backend.Save(s.values)
}

// IsBookmarked reports whether an item is bookmarked.
func (s *Store) IsBookmarked(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.values[bookmarkPrefix+itemID]
	return ok
}

// Bookmarks returns the bookmarked item IDs, sorted for stable output.
func (s *Store) Bookmarks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for key := range s.values {
		if len(key) > len(bookmarkPrefix) && key[:len(bookmarkPrefix)] == bookmarkPrefix {
			ids = append(ids, key[len(bookmarkPrefix):])
		}
	}
	sort.Strings(ids)
	return ids
}
