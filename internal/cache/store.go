// Package cache is the durable local fallback: a JSON snapshot of the last
// good collection plus the persisted dark-mode preference. Every read is
// best-effort; corruption and missing files are cache misses, never errors.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	snapshotFile = "cache.json"
	darkModeFile = "darkmode"
)

// Store reads and writes cache files under a single directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore roots the cache in ~/.kardex.
func DefaultStore() *Store {
	home, _ := os.UserHomeDir()
	return NewStore(filepath.Join(home, ".kardex"))
}

// Dir returns the cache directory.
func (s *Store) Dir() string {
	return s.dir
}

// SaveSnapshot serializes v to the snapshot file.
func (s *Store) SaveSnapshot(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, snapshotFile), data, 0600)
}

// LoadSnapshot deserializes the snapshot file into v. Returns false on any
// miss: no file, unreadable file, or malformed JSON.
func (s *Store) LoadSnapshot(v any) bool {
	data, err := os.ReadFile(filepath.Join(s.dir, snapshotFile))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// ClearSnapshot removes the snapshot file if present.
func (s *Store) ClearSnapshot() error {
	err := os.Remove(filepath.Join(s.dir, snapshotFile))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// SaveDarkMode persists the theme preference as a stringified flag.
func (s *Store) SaveDarkMode(dark bool) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, darkModeFile), []byte(strconv.FormatBool(dark)), 0600)
}

// DarkMode returns the persisted preference; absent or unparseable means
// light mode.
func (s *Store) DarkMode() bool {
	data, err := os.ReadFile(filepath.Join(s.dir, darkModeFile))
	if err != nil {
		return false
	}
	dark, err := strconv.ParseBool(strings.TrimSpace(string(data)))
	return err == nil && dark
}
