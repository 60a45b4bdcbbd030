package section

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// Store is the page-scoped key-value surface fold state persists through.
// In production this is the host application's local storage; the
// implementations here back tests and the CLI.
type Store interface {
	// Get returns the value for key, with ok false when absent.
	Get(key string) (value []byte, ok bool, err error)

	// Set writes the value for key.
	Set(key string, value []byte) error

	// Delete removes the key; deleting an absent key is not an error.
	Delete(key string) error
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get implements Store.
func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Set implements Store.
func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// FileStore persists keys as files in a directory, one file per key.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get implements Store.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	value, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set implements Store. Writes are atomic (temp file and rename) so a
// crashed write never leaves a truncated value behind.
func (s *FileStore) Set(key string, value []byte) error {
	path := s.path(key)

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(value); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}

// Delete implements Store.
func (s *FileStore) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}

// path maps a key to a file path. Keys are percent-escaped so arbitrary page
// identifiers cannot traverse out of the store directory.
func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key))
}
