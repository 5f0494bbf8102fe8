package settings

import (
	"fmt"
	"maps"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	KeyTheme    = "theme"
	KeyLanguage = "language"
)

// Defaults returns the values written by Store.LoadDefaults.
func Defaults() map[string]string {
	return map[string]string{
		KeyTheme:    "dark",
		KeyLanguage: "en",
	}
}

// NormalizeKey returns the canonical form of a setting key. Keys are
// case-insensitive: every Store method stores and looks up the lower-cased,
// trimmed key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Store is a concurrency-safe string map of settings.
type Store struct {
	mu       sync.RWMutex
	settings map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{settings: make(map[string]string)}
}

// LoadDefaults writes the default settings, overwriting any previous values
// for the same keys. Calling it again has the same effect as calling it once.
func (s *Store) LoadDefaults() {
	s.Merge(Defaults())
}

// Get returns the value stored under key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.settings[NormalizeKey(key)]
	return v, ok
}

// Set inserts or overwrites a single setting.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings[NormalizeKey(key)] = value
}

// Merge writes every entry of values into the store.
func (s *Store) Merge(values map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range values {
		s.settings[NormalizeKey(k)] = v
	}
}

// All returns a snapshot of the current settings.
func (s *Store) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.settings)
}

// Len returns the number of stored settings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.settings)
}

// LoadFile merges a dotenv-formatted file into the store, so THEME=light
// overrides the "theme" default. It returns the number of keys read.
func (s *Store) LoadFile(path string) (int, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return 0, fmt.Errorf("read settings file %q: %w", path, err)
	}

	s.Merge(values)
	return len(values), nil
}
